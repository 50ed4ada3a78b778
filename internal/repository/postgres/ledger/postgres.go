package ledger

import (
	"context"
	"time"

	ledgerdomain "family-dues-go/internal/domain/ledger"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreatePayment(ctx context.Context, payment *ledgerdomain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PostgresRepository) ListPayments(ctx context.Context, familyID string) ([]ledgerdomain.Payment, error) {
	var payments []ledgerdomain.Payment
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("payment_date desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PostgresRepository) SumPaymentsThrough(ctx context.Context, familyID string, asOf time.Time) (float64, error) {
	return r.sum(ctx, &ledgerdomain.Payment{}, "family_id = ? AND payment_date <= ?", familyID, asOf)
}

func (r *PostgresRepository) SumPaymentsBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error) {
	return r.sum(ctx, &ledgerdomain.Payment{}, "family_id = ? AND payment_date >= ? AND payment_date <= ?", familyID, from, to)
}

func (r *PostgresRepository) CreateWithdrawal(ctx context.Context, withdrawal *ledgerdomain.Withdrawal) error {
	return r.db.WithContext(ctx).Create(withdrawal).Error
}

func (r *PostgresRepository) ListWithdrawals(ctx context.Context, familyID string) ([]ledgerdomain.Withdrawal, error) {
	var withdrawals []ledgerdomain.Withdrawal
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("withdrawal_date desc").
		Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r *PostgresRepository) SumWithdrawalsThrough(ctx context.Context, familyID string, asOf time.Time) (float64, error) {
	return r.sum(ctx, &ledgerdomain.Withdrawal{}, "family_id = ? AND withdrawal_date <= ?", familyID, asOf)
}

func (r *PostgresRepository) SumWithdrawalsBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error) {
	return r.sum(ctx, &ledgerdomain.Withdrawal{}, "family_id = ? AND withdrawal_date >= ? AND withdrawal_date <= ?", familyID, from, to)
}

func (r *PostgresRepository) CreateLifecycleEvent(ctx context.Context, event *ledgerdomain.LifecycleEventPayment) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *PostgresRepository) ListLifecycleEvents(ctx context.Context, familyID string) ([]ledgerdomain.LifecycleEventPayment, error) {
	var events []ledgerdomain.LifecycleEventPayment
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("event_date desc").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) ListEventsBetween(ctx context.Context, from, to time.Time) ([]ledgerdomain.LifecycleEventPayment, error) {
	var events []ledgerdomain.LifecycleEventPayment
	if err := r.db.WithContext(ctx).
		Where("event_date >= ? AND event_date <= ?", from, to).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) SumLifecycleThrough(ctx context.Context, familyID string, asOf time.Time) (float64, error) {
	return r.sum(ctx, &ledgerdomain.LifecycleEventPayment{}, "family_id = ? AND event_date <= ?", familyID, asOf)
}

func (r *PostgresRepository) SumLifecycleBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error) {
	return r.sum(ctx, &ledgerdomain.LifecycleEventPayment{}, "family_id = ? AND event_date >= ? AND event_date <= ?", familyID, from, to)
}

func (r *PostgresRepository) sum(ctx context.Context, model interface{}, query string, args ...interface{}) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(model).
		Where(query, args...).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
