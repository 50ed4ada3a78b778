package calculation

import (
	"context"
	"fmt"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	ledgerdomain "family-dues-go/internal/domain/ledger"
	"family-dues-go/internal/domain/plan"
	"github.com/google/uuid"
)

// MemberStore is the read slice of the family repository the income
// aggregation scans.
type MemberStore interface {
	ListAllMembers(ctx context.Context) ([]familydomain.Member, error)
}

// EventStore is the read slice of the ledger the expense aggregation scans.
type EventStore interface {
	ListEventsBetween(ctx context.Context, from, to time.Time) ([]ledgerdomain.LifecycleEventPayment, error)
}

type Service struct {
	members MemberStore
	events  EventStore
	repo    Repository
	rates   plan.Rates
}

func NewService(members MemberStore, events EventStore, repo Repository, rates plan.Rates) *Service {
	return &Service{
		members: members,
		events:  events,
		repo:    repo,
		rates:   rates,
	}
}

// YearlyIncome buckets every member by the bracket of their age as of
// December 31 of year and converts counts to income using the bracket
// rates. A member without a birth date fails the whole calculation.
func (s *Service) YearlyIncome(ctx context.Context, year int, extraDonation float64) (IncomeBreakdown, error) {
	members, err := s.members.ListAllMembers(ctx)
	if err != nil {
		return IncomeBreakdown{}, err
	}

	var breakdown IncomeBreakdown
	for _, member := range members {
		if member.BirthDate == nil {
			return IncomeBreakdown{}, fmt.Errorf("member %s: %w", member.ID, ErrMissingBirthDate)
		}
		age := plan.AgeInYear(*member.BirthDate, year)
		switch s.rates.BracketFor(age) {
		case 1:
			breakdown.AgeGroup0to4++
		case 2:
			breakdown.AgeGroup5to8++
		case 3:
			breakdown.AgeGroup9to16++
		case 4:
			breakdown.AgeGroup17Plus++
		}
	}

	breakdown.IncomeAgeGroup0to4 = float64(breakdown.AgeGroup0to4) * s.rates.Amount(1)
	breakdown.IncomeAgeGroup5to8 = float64(breakdown.AgeGroup5to8) * s.rates.Amount(2)
	breakdown.IncomeAgeGroup9to16 = float64(breakdown.AgeGroup9to16) * s.rates.Amount(3)
	breakdown.IncomeAgeGroup17Plus = float64(breakdown.AgeGroup17Plus) * s.rates.Amount(4)

	breakdown.TotalIncome = breakdown.IncomeAgeGroup0to4 +
		breakdown.IncomeAgeGroup5to8 +
		breakdown.IncomeAgeGroup9to16 +
		breakdown.IncomeAgeGroup17Plus
	breakdown.ExtraDonation = extraDonation
	breakdown.CalculatedIncome = breakdown.TotalIncome + extraDonation

	return breakdown, nil
}

// YearlyExpenses groups lifecycle event payments dated within the
// calendar year by event type and sums their amounts.
func (s *Service) YearlyExpenses(ctx context.Context, year int, extraExpense float64) (ExpenseBreakdown, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	events, err := s.events.ListEventsBetween(ctx, from, to)
	if err != nil {
		return ExpenseBreakdown{}, err
	}

	var breakdown ExpenseBreakdown
	for _, event := range events {
		switch event.EventType {
		case plan.EventWedding:
			breakdown.WeddingCount++
			breakdown.WeddingAmount += event.Amount
		case plan.EventBarMitzvah:
			breakdown.BarMitzvahCount++
			breakdown.BarMitzvahAmount += event.Amount
		case plan.EventBirthBoy:
			breakdown.BirthBoyCount++
			breakdown.BirthBoyAmount += event.Amount
		case plan.EventBirthGirl:
			breakdown.BirthGirlCount++
			breakdown.BirthGirlAmount += event.Amount
		}
	}

	breakdown.TotalExpenses = breakdown.WeddingAmount +
		breakdown.BarMitzvahAmount +
		breakdown.BirthBoyAmount +
		breakdown.BirthGirlAmount
	breakdown.ExtraExpense = extraExpense
	breakdown.CalculatedExpenses = breakdown.TotalExpenses + extraExpense

	return breakdown, nil
}

// CalculateYear derives the year's full income/expense breakdown and
// balance, then upserts the single record keyed by year. The result is
// buffered and written once, so a failed read never leaves a partial
// record behind.
func (s *Service) CalculateYear(ctx context.Context, year int, extraDonation, extraExpense float64) (*YearlyCalculation, error) {
	income, err := s.YearlyIncome(ctx, year, extraDonation)
	if err != nil {
		return nil, err
	}
	expenses, err := s.YearlyExpenses(ctx, year, extraExpense)
	if err != nil {
		return nil, err
	}

	calc := YearlyCalculation{
		ID:   uuid.NewString(),
		Year: year,

		AgeGroup0to4:   income.AgeGroup0to4,
		AgeGroup5to8:   income.AgeGroup5to8,
		AgeGroup9to16:  income.AgeGroup9to16,
		AgeGroup17Plus: income.AgeGroup17Plus,

		IncomeAgeGroup0to4:   income.IncomeAgeGroup0to4,
		IncomeAgeGroup5to8:   income.IncomeAgeGroup5to8,
		IncomeAgeGroup9to16:  income.IncomeAgeGroup9to16,
		IncomeAgeGroup17Plus: income.IncomeAgeGroup17Plus,

		TotalIncome:      income.TotalIncome,
		ExtraDonation:    income.ExtraDonation,
		CalculatedIncome: income.CalculatedIncome,

		WeddingCount:    expenses.WeddingCount,
		BarMitzvahCount: expenses.BarMitzvahCount,
		BirthBoyCount:   expenses.BirthBoyCount,
		BirthGirlCount:  expenses.BirthGirlCount,

		WeddingAmount:    expenses.WeddingAmount,
		BarMitzvahAmount: expenses.BarMitzvahAmount,
		BirthBoyAmount:   expenses.BirthBoyAmount,
		BirthGirlAmount:  expenses.BirthGirlAmount,

		TotalExpenses:      expenses.TotalExpenses,
		ExtraExpense:       expenses.ExtraExpense,
		CalculatedExpenses: expenses.CalculatedExpenses,

		Balance: income.CalculatedIncome - expenses.CalculatedExpenses,
	}

	if err := s.repo.UpsertByYear(ctx, &calc); err != nil {
		return nil, err
	}
	return &calc, nil
}

func (s *Service) GetYear(ctx context.Context, year int) (*YearlyCalculation, error) {
	return s.repo.GetByYear(ctx, year)
}

func (s *Service) ListYears(ctx context.Context) ([]YearlyCalculation, error) {
	return s.repo.List(ctx)
}
