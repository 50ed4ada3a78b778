package ledger

import (
	"context"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	"family-dues-go/internal/domain/plan"
	"github.com/google/uuid"
)

// FamilyStore is the slice of the family repository the ledger needs:
// opening balances and existence checks.
type FamilyStore interface {
	GetFamily(ctx context.Context, familyID string) (*familydomain.Family, error)
}

type Service struct {
	repo     Repository
	families FamilyStore
	rates    plan.Rates
	now      func() time.Time
}

func NewService(repo Repository, families FamilyStore, rates plan.Rates) *Service {
	return &Service{
		repo:     repo,
		families: families,
		rates:    rates,
		now:      time.Now,
	}
}

// FamilyBalanceAsOf computes a family's running balance as of asOf:
// opening balance plus payments, minus withdrawals and lifecycle event
// payments dated on or before asOf. A zero asOf means now.
func (s *Service) FamilyBalanceAsOf(ctx context.Context, familyID string, asOf time.Time) (BalanceSnapshot, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}

	family, err := s.families.GetFamily(ctx, familyID)
	if err != nil {
		return BalanceSnapshot{}, err
	}

	payments, err := s.repo.SumPaymentsThrough(ctx, familyID, asOf)
	if err != nil {
		return BalanceSnapshot{}, err
	}
	withdrawals, err := s.repo.SumWithdrawalsThrough(ctx, familyID, asOf)
	if err != nil {
		return BalanceSnapshot{}, err
	}
	lifecycle, err := s.repo.SumLifecycleThrough(ctx, familyID, asOf)
	if err != nil {
		return BalanceSnapshot{}, err
	}

	return BalanceSnapshot{
		OpeningBalance:         family.OpenBalance,
		TotalPayments:          payments,
		TotalWithdrawals:       withdrawals,
		TotalLifecyclePayments: lifecycle,
		Balance:                family.OpenBalance + payments - withdrawals - lifecycle,
	}, nil
}

func (s *Service) CreatePayment(ctx context.Context, input CreatePaymentInput) (*Payment, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.families.GetFamily(ctx, input.FamilyID); err != nil {
		return nil, err
	}
	if input.Year == 0 {
		input.Year = input.PaymentDate.Year()
	}
	if input.Method == "" {
		input.Method = "cash"
	}

	payment := Payment{
		ID:          uuid.NewString(),
		FamilyID:    input.FamilyID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		Year:        input.Year,
		Method:      input.Method,
		Notes:       input.Notes,
	}
	if err := s.repo.CreatePayment(ctx, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) ListPayments(ctx context.Context, familyID string) ([]Payment, error) {
	if _, err := s.families.GetFamily(ctx, familyID); err != nil {
		return nil, err
	}
	return s.repo.ListPayments(ctx, familyID)
}

func (s *Service) CreateWithdrawal(ctx context.Context, input CreateWithdrawalInput) (*Withdrawal, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.families.GetFamily(ctx, input.FamilyID); err != nil {
		return nil, err
	}
	if input.Year == 0 {
		input.Year = input.WithdrawalDate.Year()
	}

	withdrawal := Withdrawal{
		ID:             uuid.NewString(),
		FamilyID:       input.FamilyID,
		Amount:         input.Amount,
		WithdrawalDate: input.WithdrawalDate,
		Year:           input.Year,
		Reason:         input.Reason,
		Notes:          input.Notes,
	}
	if err := s.repo.CreateWithdrawal(ctx, &withdrawal); err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, familyID string) ([]Withdrawal, error) {
	if _, err := s.families.GetFamily(ctx, familyID); err != nil {
		return nil, err
	}
	return s.repo.ListWithdrawals(ctx, familyID)
}

// CreateLifecycleEvent records a lifecycle event payment. A zero amount
// falls back to the configured flat rate for the event type.
func (s *Service) CreateLifecycleEvent(ctx context.Context, input CreateLifecycleEventInput) (*LifecycleEventPayment, error) {
	if _, ok := s.rates.Events[input.EventType]; !ok {
		return nil, ErrUnknownEventType
	}
	if input.Amount == 0 {
		input.Amount = s.rates.EventAmount(input.EventType)
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.families.GetFamily(ctx, input.FamilyID); err != nil {
		return nil, err
	}
	if input.Year == 0 {
		input.Year = input.EventDate.Year()
	}

	event := LifecycleEventPayment{
		ID:        uuid.NewString(),
		FamilyID:  input.FamilyID,
		MemberID:  input.MemberID,
		EventType: input.EventType,
		EventDate: input.EventDate,
		Amount:    input.Amount,
		Year:      input.Year,
		Notes:     input.Notes,
	}
	if err := s.repo.CreateLifecycleEvent(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Service) ListLifecycleEvents(ctx context.Context, familyID string) ([]LifecycleEventPayment, error) {
	if _, err := s.families.GetFamily(ctx, familyID); err != nil {
		return nil, err
	}
	return s.repo.ListLifecycleEvents(ctx, familyID)
}
