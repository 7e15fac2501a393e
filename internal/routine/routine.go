package routine

import "math"

// PeriodID identifies a time-of-day routine grouping.
type PeriodID string

const (
	Morning   PeriodID = "morning"
	Afternoon PeriodID = "afternoon"
	Night     PeriodID = "night"
)

// Step is one checklist item inside a period.
type Step struct {
	ID          string
	Name        string
	Description string
	Completed   bool
}

// Period is an ordered checklist for one part of the day. The step list
// is fixed at creation; only the Completed flags change.
type Period struct {
	ID    PeriodID
	Name  string
	Steps []Step
}

// CompletedCount returns the number of completed steps.
func (p Period) CompletedCount() int {
	n := 0
	for _, s := range p.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}

// CompletionPercentage returns round(100 * completed / total), or 0 for a
// period with no steps.
func (p Period) CompletionPercentage() int {
	if len(p.Steps) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.CompletedCount()) / float64(len(p.Steps))))
}

// Tracker owns the day's routine periods and their checklist state.
type Tracker struct {
	periods []Period
}

// NewTracker creates a tracker over a copy of periods.
func NewTracker(periods []Period) *Tracker {
	return &Tracker{periods: clonePeriods(periods)}
}

// Periods returns a deep copy of the periods in display order.
func (t *Tracker) Periods() []Period {
	return clonePeriods(t.periods)
}

// Period returns a copy of the period with the given id.
func (t *Tracker) Period(id PeriodID) (Period, bool) {
	for _, p := range t.periods {
		if p.ID == id {
			return clonePeriod(p), true
		}
	}
	return Period{}, false
}

// ToggleStep flips the completed flag of exactly one step. It returns false
// and changes nothing when the (period, step) pair does not exist.
func (t *Tracker) ToggleStep(periodID PeriodID, stepID string) bool {
	for i := range t.periods {
		if t.periods[i].ID != periodID {
			continue
		}
		steps := t.periods[i].Steps
		for j := range steps {
			if steps[j].ID == stepID {
				steps[j].Completed = !steps[j].Completed
				return true
			}
		}
		return false
	}
	return false
}

// CompletionPercentage returns the completion of the given period, or 0
// when the period does not exist.
func (t *Tracker) CompletionPercentage(periodID PeriodID) int {
	p, ok := t.Period(periodID)
	if !ok {
		return 0
	}
	return p.CompletionPercentage()
}

func clonePeriods(periods []Period) []Period {
	out := make([]Period, len(periods))
	for i, p := range periods {
		out[i] = clonePeriod(p)
	}
	return out
}

func clonePeriod(p Period) Period {
	p.Steps = append([]Step(nil), p.Steps...)
	return p
}
