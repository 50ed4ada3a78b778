package calculation

import (
	"context"
	"errors"

	calcdomain "family-dues-go/internal/domain/calculation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// UpsertByYear writes the calculation in a single statement keyed by the
// year's unique index. On conflict every calculation column is replaced;
// the row identity (id, created_at) of the first write is kept so
// recalculating a year does not churn the record.
func (r *PostgresRepository) UpsertByYear(ctx context.Context, calc *calcdomain.YearlyCalculation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age_group_0_to_4", "age_group_5_to_8", "age_group_9_to_16", "age_group_17_plus",
			"income_age_group_0_to_4", "income_age_group_5_to_8", "income_age_group_9_to_16", "income_age_group_17_plus",
			"total_income", "extra_donation", "calculated_income",
			"wedding_count", "bar_mitzvah_count", "birth_boy_count", "birth_girl_count",
			"wedding_amount", "bar_mitzvah_amount", "birth_boy_amount", "birth_girl_amount",
			"total_expenses", "extra_expense", "calculated_expenses",
			"balance", "updated_at",
		}),
	}).Create(calc).Error
}

func (r *PostgresRepository) GetByYear(ctx context.Context, year int) (*calcdomain.YearlyCalculation, error) {
	var calc calcdomain.YearlyCalculation
	if err := r.db.WithContext(ctx).Where("year = ?", year).First(&calc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, calcdomain.ErrCalculationNotFound
		}
		return nil, err
	}
	return &calc, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]calcdomain.YearlyCalculation, error) {
	var calcs []calcdomain.YearlyCalculation
	if err := r.db.WithContext(ctx).Order("year desc").Find(&calcs).Error; err != nil {
		return nil, err
	}
	return calcs, nil
}
