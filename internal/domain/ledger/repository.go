package ledger

import (
	"context"
	"time"
)

type Repository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	ListPayments(ctx context.Context, familyID string) ([]Payment, error)
	SumPaymentsThrough(ctx context.Context, familyID string, asOf time.Time) (float64, error)
	SumPaymentsBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)

	CreateWithdrawal(ctx context.Context, withdrawal *Withdrawal) error
	ListWithdrawals(ctx context.Context, familyID string) ([]Withdrawal, error)
	SumWithdrawalsThrough(ctx context.Context, familyID string, asOf time.Time) (float64, error)
	SumWithdrawalsBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)

	CreateLifecycleEvent(ctx context.Context, event *LifecycleEventPayment) error
	ListLifecycleEvents(ctx context.Context, familyID string) ([]LifecycleEventPayment, error)
	ListEventsBetween(ctx context.Context, from, to time.Time) ([]LifecycleEventPayment, error)
	SumLifecycleThrough(ctx context.Context, familyID string, asOf time.Time) (float64, error)
	SumLifecycleBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)
}
