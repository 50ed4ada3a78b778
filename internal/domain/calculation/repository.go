package calculation

import "context"

type Repository interface {
	// UpsertByYear replaces the record for calc.Year entirely, creating
	// it when absent. The store must make this atomic per year.
	UpsertByYear(ctx context.Context, calc *YearlyCalculation) error
	GetByYear(ctx context.Context, year int) (*YearlyCalculation, error)
	List(ctx context.Context) ([]YearlyCalculation, error)
}
