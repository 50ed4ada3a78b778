package calculation

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	ledgerdomain "family-dues-go/internal/domain/ledger"
	"family-dues-go/internal/domain/plan"
)

type fakeMemberStore struct {
	members []familydomain.Member
	err     error
}

func (f *fakeMemberStore) ListAllMembers(ctx context.Context) ([]familydomain.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

type fakeEventStore struct {
	events []ledgerdomain.LifecycleEventPayment
}

func (f *fakeEventStore) ListEventsBetween(ctx context.Context, from, to time.Time) ([]ledgerdomain.LifecycleEventPayment, error) {
	var within []ledgerdomain.LifecycleEventPayment
	for _, event := range f.events {
		if event.EventDate.Before(from) || event.EventDate.After(to) {
			continue
		}
		within = append(within, event)
	}
	return within, nil
}

// fakeCalcRepo mimics the postgres upsert: the first write's id and
// created_at survive recalculation.
type fakeCalcRepo struct {
	byYear  map[int]*YearlyCalculation
	upserts int
}

func newFakeCalcRepo() *fakeCalcRepo {
	return &fakeCalcRepo{byYear: make(map[int]*YearlyCalculation)}
}

func (f *fakeCalcRepo) UpsertByYear(ctx context.Context, calc *YearlyCalculation) error {
	f.upserts++
	if existing, ok := f.byYear[calc.Year]; ok {
		updated := *calc
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		f.byYear[calc.Year] = &updated
		return nil
	}
	stored := *calc
	f.byYear[calc.Year] = &stored
	return nil
}

func (f *fakeCalcRepo) GetByYear(ctx context.Context, year int) (*YearlyCalculation, error) {
	calc, ok := f.byYear[year]
	if !ok {
		return nil, ErrCalculationNotFound
	}
	return calc, nil
}

func (f *fakeCalcRepo) List(ctx context.Context) ([]YearlyCalculation, error) {
	var calcs []YearlyCalculation
	for _, calc := range f.byYear {
		calcs = append(calcs, *calc)
	}
	return calcs, nil
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year, month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestCalculateYearScenario(t *testing.T) {
	members := &fakeMemberStore{
		members: []familydomain.Member{
			{ID: "m-1", FamilyID: "fam-1", FirstName: "A", LastName: "B", BirthDate: datePtr(2019, 1, 1)},
		},
	}
	events := &fakeEventStore{
		events: []ledgerdomain.LifecycleEventPayment{
			{ID: "e-1", FamilyID: "fam-1", EventType: plan.EventBarMitzvah, EventDate: date(2024, 5, 1), Amount: 1800},
		},
	}
	repo := newFakeCalcRepo()
	svc := NewService(members, events, repo, plan.DefaultRates())

	calc, err := svc.CalculateYear(context.Background(), 2024, 200, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Born 2019-01-01 is age 5 on Dec 31 2024, bracket 2 at 1500.
	if calc.AgeGroup5to8 != 1 {
		t.Fatalf("expected one member in bracket 2, got %+v", calc)
	}
	if calc.TotalIncome != 1500 {
		t.Fatalf("expected total income 1500, got %v", calc.TotalIncome)
	}
	if calc.CalculatedIncome != 1700 {
		t.Fatalf("expected calculated income 1700, got %v", calc.CalculatedIncome)
	}
	if calc.BarMitzvahCount != 1 || calc.BarMitzvahAmount != 1800 {
		t.Fatalf("unexpected bar mitzvah aggregation: %+v", calc)
	}
	if calc.TotalExpenses != 1800 || calc.CalculatedExpenses != 1800 {
		t.Fatalf("unexpected expenses: %+v", calc)
	}
	if calc.Balance != -100 {
		t.Fatalf("expected balance -100, got %v", calc.Balance)
	}
}

func TestCalculateYearInvariants(t *testing.T) {
	members := &fakeMemberStore{
		members: []familydomain.Member{
			{ID: "m-1", BirthDate: datePtr(2022, 3, 3)},
			{ID: "m-2", BirthDate: datePtr(2010, 6, 6)},
			{ID: "m-3", BirthDate: datePtr(1980, 9, 9)},
		},
	}
	events := &fakeEventStore{
		events: []ledgerdomain.LifecycleEventPayment{
			{ID: "e-1", EventType: plan.EventWedding, EventDate: date(2024, 6, 10), Amount: 12180},
			{ID: "e-2", EventType: plan.EventBirthGirl, EventDate: date(2024, 8, 2), Amount: 500},
			{ID: "e-3", EventType: plan.EventBirthBoy, EventDate: date(2023, 8, 2), Amount: 500},
		},
	}
	repo := newFakeCalcRepo()
	svc := NewService(members, events, repo, plan.DefaultRates())

	calc, err := svc.CalculateYear(context.Background(), 2024, 350, 120)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	bracketIncome := calc.IncomeAgeGroup0to4 + calc.IncomeAgeGroup5to8 + calc.IncomeAgeGroup9to16 + calc.IncomeAgeGroup17Plus
	if calc.CalculatedIncome != bracketIncome+calc.ExtraDonation {
		t.Fatalf("income invariant violated: %+v", calc)
	}
	eventAmounts := calc.WeddingAmount + calc.BarMitzvahAmount + calc.BirthBoyAmount + calc.BirthGirlAmount
	if calc.CalculatedExpenses != eventAmounts+calc.ExtraExpense {
		t.Fatalf("expense invariant violated: %+v", calc)
	}
	if calc.Balance != calc.CalculatedIncome-calc.CalculatedExpenses {
		t.Fatalf("balance invariant violated: %+v", calc)
	}

	// The 2023 birth must not leak into 2024.
	if calc.BirthBoyCount != 0 {
		t.Fatalf("expected no birth_boy events in 2024, got %d", calc.BirthBoyCount)
	}
}

func TestCalculateYearIdempotent(t *testing.T) {
	members := &fakeMemberStore{
		members: []familydomain.Member{
			{ID: "m-1", BirthDate: datePtr(2015, 2, 2)},
		},
	}
	events := &fakeEventStore{}
	repo := newFakeCalcRepo()
	svc := NewService(members, events, repo, plan.DefaultRates())

	if _, err := svc.CalculateYear(context.Background(), 2025, 0, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	first := *repo.byYear[2025]

	if _, err := svc.CalculateYear(context.Background(), 2025, 0, 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second := *repo.byYear[2025]

	if repo.upserts != 2 {
		t.Fatalf("expected 2 upserts, got %d", repo.upserts)
	}
	if len(repo.byYear) != 1 {
		t.Fatalf("expected a single record for the year, got %d", len(repo.byYear))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recalculation drifted:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCalculateYearMissingBirthDate(t *testing.T) {
	members := &fakeMemberStore{
		members: []familydomain.Member{
			{ID: "m-1", BirthDate: datePtr(2015, 2, 2)},
			{ID: "m-2"},
		},
	}
	repo := newFakeCalcRepo()
	svc := NewService(members, &fakeEventStore{}, repo, plan.DefaultRates())

	_, err := svc.CalculateYear(context.Background(), 2024, 0, 0)
	if !errors.Is(err, ErrMissingBirthDate) {
		t.Fatalf("expected ErrMissingBirthDate, got %v", err)
	}
	if repo.upserts != 0 {
		t.Fatalf("expected no write after failed aggregation, got %d", repo.upserts)
	}
}
