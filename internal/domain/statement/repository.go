package statement

import (
	"context"
	"time"
)

type Repository interface {
	// ExistsForPeriod reports whether the family already has a statement
	// whose period start falls in [periodStart, periodEnd).
	ExistsForPeriod(ctx context.Context, familyID string, periodStart, periodEnd time.Time) (bool, error)
	Create(ctx context.Context, statement *Statement) error
	Get(ctx context.Context, statementID string) (*Statement, error)
	ListByFamily(ctx context.Context, familyID string) ([]Statement, error)
}
