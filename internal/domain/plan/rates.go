package plan

import "fmt"

// Lifecycle event types as stored on lifecycle event payments.
const (
	EventWedding    = "chasena"
	EventBarMitzvah = "bar_mitzvah"
	EventBirthBoy   = "birth_boy"
	EventBirthGirl  = "birth_girl"
)

// EventTypes lists the known lifecycle event types in display order.
var EventTypes = []string{EventWedding, EventBarMitzvah, EventBirthBoy, EventBirthGirl}

const BracketCount = 4

// BracketRate defines one payment bracket: an inclusive age range and the
// flat yearly due for a member in that range. AgeEnd < 0 means open-ended.
type BracketRate struct {
	Bracket  int
	AgeStart int
	AgeEnd   int
	Amount   float64
}

// Rates is the per-deployment rate configuration: the four payment
// brackets plus the flat amount charged per lifecycle event type.
type Rates struct {
	Brackets [BracketCount]BracketRate
	Events   map[string]float64
}

// DefaultRates returns the standard rate tables.
func DefaultRates() Rates {
	return Rates{
		Brackets: [BracketCount]BracketRate{
			{Bracket: 1, AgeStart: 0, AgeEnd: 4, Amount: 1200},
			{Bracket: 2, AgeStart: 5, AgeEnd: 8, Amount: 1500},
			{Bracket: 3, AgeStart: 9, AgeEnd: 16, Amount: 1800},
			{Bracket: 4, AgeStart: 17, AgeEnd: -1, Amount: 2500},
		},
		Events: map[string]float64{
			EventWedding:    12180,
			EventBarMitzvah: 1800,
			EventBirthBoy:   500,
			EventBirthGirl:  500,
		},
	}
}

// BracketFor maps an age to its bracket number (1..4). Ages past the last
// closed range always fall into the open-ended bracket. Negative ages are
// not guarded; callers validate birth dates first.
func (r Rates) BracketFor(age int) int {
	for _, b := range r.Brackets {
		if b.AgeEnd < 0 || age <= b.AgeEnd {
			return b.Bracket
		}
	}
	return r.Brackets[BracketCount-1].Bracket
}

// Amount returns the yearly due for a bracket number.
func (r Rates) Amount(bracket int) float64 {
	for _, b := range r.Brackets {
		if b.Bracket == bracket {
			return b.Amount
		}
	}
	return 0
}

// EventAmount returns the configured flat amount for a lifecycle event
// type, or 0 when the type is unknown.
func (r Rates) EventAmount(eventType string) float64 {
	return r.Events[eventType]
}

// Validate checks that the brackets form a total, non-overlapping
// partition of the age domain [0, inf): the first range starts at 0, each
// range starts where the previous one ended, and the last is open-ended.
func (r Rates) Validate() error {
	if r.Brackets[0].AgeStart != 0 {
		return fmt.Errorf("bracket %d: age range must start at 0, got %d", r.Brackets[0].Bracket, r.Brackets[0].AgeStart)
	}
	for i, b := range r.Brackets {
		if b.Bracket != i+1 {
			return fmt.Errorf("bracket at position %d: expected number %d, got %d", i, i+1, b.Bracket)
		}
		if b.Amount < 0 {
			return fmt.Errorf("bracket %d: negative amount", b.Bracket)
		}
		last := i == BracketCount-1
		if last {
			if b.AgeEnd >= 0 {
				return fmt.Errorf("bracket %d: last bracket must be open-ended", b.Bracket)
			}
			continue
		}
		if b.AgeEnd < b.AgeStart {
			return fmt.Errorf("bracket %d: empty age range", b.Bracket)
		}
		if next := r.Brackets[i+1]; next.AgeStart != b.AgeEnd+1 {
			return fmt.Errorf("bracket %d: range must start at %d, got %d", next.Bracket, b.AgeEnd+1, next.AgeStart)
		}
	}
	for _, eventType := range EventTypes {
		if _, ok := r.Events[eventType]; !ok {
			return fmt.Errorf("missing amount for event type %s", eventType)
		}
	}
	return nil
}
