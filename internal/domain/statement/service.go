package statement

import (
	"context"
	"fmt"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	ledgerdomain "family-dues-go/internal/domain/ledger"
	"family-dues-go/pkg/logger"
	"github.com/google/uuid"
)

// FamilyStore lists the families to generate statements for.
type FamilyStore interface {
	ListFamilies(ctx context.Context) ([]familydomain.Family, error)
}

// BalanceCalculator computes a family's running balance, shared with the
// ad-hoc balance endpoint so both produce identical numbers.
type BalanceCalculator interface {
	FamilyBalanceAsOf(ctx context.Context, familyID string, asOf time.Time) (ledgerdomain.BalanceSnapshot, error)
}

// LedgerStore sums ledger activity inside the statement window.
type LedgerStore interface {
	SumPaymentsBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)
	SumWithdrawalsBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)
	SumLifecycleBetween(ctx context.Context, familyID string, from, to time.Time) (float64, error)
}

type Service struct {
	families FamilyStore
	balances BalanceCalculator
	ledger   LedgerStore
	repo     Repository
	log      logger.Logger
	now      func() time.Time
}

func NewService(families FamilyStore, balances BalanceCalculator, ledger LedgerStore, repo Repository, log logger.Logger) *Service {
	return &Service{
		families: families,
		balances: balances,
		ledger:   ledger,
		repo:     repo,
		log:      log,
		now:      time.Now,
	}
}

// GenerateMonthly produces one statement per family for the given month.
// Zero year/month default to the current month. Families that already
// have a statement for the period are skipped, so re-running the batch
// never duplicates statements. A failure on one family is recorded and
// the batch continues.
func (s *Service) GenerateMonthly(ctx context.Context, year, month int) (*BatchResult, error) {
	current := s.now()
	if year == 0 {
		year = current.Year()
	}
	if month == 0 {
		month = int(current.Month())
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonth.Add(-time.Second)

	families, err := s.families.ListFamilies(ctx)
	if err != nil {
		return nil, err
	}

	result := BatchResult{
		Year:       year,
		Month:      month,
		Statements: []GeneratedStatement{},
		Errors:     []BatchError{},
	}

	for _, family := range families {
		generated, err := s.generateForFamily(ctx, family, monthStart, monthEnd, nextMonth)
		if err != nil {
			s.log.BusinessError("statements: generation failed", err, "family_id", family.ID, "family_name", family.Name)
			result.Errors = append(result.Errors, BatchError{
				FamilyID:   family.ID,
				FamilyName: family.Name,
				Error:      err.Error(),
			})
			continue
		}
		if generated == nil {
			// Statement already exists for this period.
			continue
		}

		s.log.Info("statements: generated", "family_id", family.ID, "statement_number", generated.StatementNumber)
		result.Statements = append(result.Statements, GeneratedStatement{
			FamilyID:        family.ID,
			FamilyName:      family.Name,
			StatementNumber: generated.StatementNumber,
		})
	}

	result.Generated = len(result.Statements)
	result.Failed = len(result.Errors)
	return &result, nil
}

func (s *Service) generateForFamily(ctx context.Context, family familydomain.Family, monthStart, monthEnd, nextMonth time.Time) (*Statement, error) {
	exists, err := s.repo.ExistsForPeriod(ctx, family.ID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("statement lookup: %w", err)
	}
	if exists {
		return nil, nil
	}

	// Balance strictly before the period begins.
	opening, err := s.balances.FamilyBalanceAsOf(ctx, family.ID, monthStart.Add(-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("opening balance: %w", err)
	}

	income, err := s.ledger.SumPaymentsBetween(ctx, family.ID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("sum payments: %w", err)
	}
	withdrawals, err := s.ledger.SumWithdrawalsBetween(ctx, family.ID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("sum withdrawals: %w", err)
	}
	expenses, err := s.ledger.SumLifecycleBetween(ctx, family.ID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("sum lifecycle events: %w", err)
	}

	statement := Statement{
		ID:              uuid.NewString(),
		FamilyID:        family.ID,
		StatementNumber: s.statementNumber(family.ID, monthStart),
		Date:            s.now().UTC(),
		FromDate:        monthStart,
		ToDate:          monthEnd,
		OpeningBalance:  opening.Balance,
		Income:          income,
		Withdrawals:     withdrawals,
		Expenses:        expenses,
		ClosingBalance:  opening.Balance + income - withdrawals - expenses,
	}
	if err := s.repo.Create(ctx, &statement); err != nil {
		return nil, fmt.Errorf("create statement: %w", err)
	}
	return &statement, nil
}

// statementNumber builds a number unique across all time: period, a
// nanosecond timestamp, and a family suffix.
func (s *Service) statementNumber(familyID string, periodStart time.Time) string {
	suffix := familyID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("STMT-%s-%d-%s", periodStart.Format("200601"), s.now().UTC().UnixNano(), suffix)
}

func (s *Service) Get(ctx context.Context, statementID string) (*Statement, error) {
	return s.repo.Get(ctx, statementID)
}

func (s *Service) ListByFamily(ctx context.Context, familyID string) ([]Statement, error) {
	return s.repo.ListByFamily(ctx, familyID)
}
