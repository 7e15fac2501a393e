package progress

import "time"

// Metric names one of the tracked skin measurements.
type Metric string

const (
	Texture          Metric = "texture"
	Spots            Metric = "spots"
	Oiliness         Metric = "oiliness"
	Uniformity       Metric = "uniformity"
	FacialDefinition Metric = "facialDefinition"
)

// AllMetrics returns every metric in display order.
func AllMetrics() []Metric {
	return []Metric{Texture, Spots, Oiliness, Uniformity, FacialDefinition}
}

// Label returns the comparison label shown next to the metric.
func (m Metric) Label() string {
	switch m {
	case Texture:
		return "Melhora na Textura"
	case Spots:
		return "Redução de Manchas"
	case Oiliness:
		return "Redução da Oleosidade"
	case Uniformity:
		return "Aparência Uniforme"
	case FacialDefinition:
		return "Definição Facial"
	default:
		return string(m)
	}
}

// Metrics holds one value per tracked metric, each in [0, 100].
type Metrics struct {
	Texture          int `json:"texture"`
	Spots            int `json:"spots"`
	Oiliness         int `json:"oiliness"`
	Uniformity       int `json:"uniformity"`
	FacialDefinition int `json:"facialDefinition"`
}

// Value returns the value for m, or false for an unknown metric.
func (ms Metrics) Value(m Metric) (int, bool) {
	switch m {
	case Texture:
		return ms.Texture, true
	case Spots:
		return ms.Spots, true
	case Oiliness:
		return ms.Oiliness, true
	case Uniformity:
		return ms.Uniformity, true
	case FacialDefinition:
		return ms.FacialDefinition, true
	}
	return 0, false
}

func (ms Metrics) clamped() Metrics {
	return Metrics{
		Texture:          clamp(ms.Texture),
		Spots:            clamp(ms.Spots),
		Oiliness:         clamp(ms.Oiliness),
		Uniformity:       clamp(ms.Uniformity),
		FacialDefinition: clamp(ms.FacialDefinition),
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Snapshot is a dated set of skin metrics tied to one photo.
type Snapshot struct {
	Date     time.Time
	PhotoRef string
	Metrics  Metrics
}

// AverageScore returns the mean of all metrics in s.
func AverageScore(s Snapshot) float64 {
	metrics := AllMetrics()
	var sum int
	for _, m := range metrics {
		v, _ := s.Metrics.Value(m)
		sum += v
	}
	return float64(sum) / float64(len(metrics))
}

// Direction describes how a metric moved between two snapshots.
type Direction string

const (
	Increase  Direction = "increase"
	Decrease  Direction = "decrease"
	Unchanged Direction = "unchanged"
)

// Arrow returns the glyph used to render the direction.
func (d Direction) Arrow() string {
	switch d {
	case Increase:
		return "↑"
	case Decrease:
		return "↓"
	default:
		return "–"
	}
}

// Delta is the change of one metric between the two latest snapshots.
type Delta struct {
	Metric    Metric
	Magnitude int
	Direction Direction
}

// Tracker keeps the append-only, insertion-ordered snapshot history.
type Tracker struct {
	snapshots []Snapshot
}

// NewTracker creates a tracker seeded with the given snapshots.
func NewTracker(seed ...Snapshot) *Tracker {
	t := &Tracker{}
	for _, s := range seed {
		t.Append(s)
	}
	return t
}

// Append adds s as the most recent snapshot. Metric values outside
// [0, 100] are clamped.
func (t *Tracker) Append(s Snapshot) {
	s.Metrics = s.Metrics.clamped()
	t.snapshots = append(t.snapshots, s)
}

// Len returns the number of snapshots.
func (t *Tracker) Len() int { return len(t.snapshots) }

// Snapshots returns a copy of the history, oldest first.
func (t *Tracker) Snapshots() []Snapshot {
	return append([]Snapshot(nil), t.snapshots...)
}

// Latest returns the most recent snapshot.
func (t *Tracker) Latest() (Snapshot, bool) {
	if len(t.snapshots) == 0 {
		return Snapshot{}, false
	}
	return t.snapshots[len(t.snapshots)-1], true
}

// Previous returns the snapshot before the latest one.
func (t *Tracker) Previous() (Snapshot, bool) {
	if len(t.snapshots) < 2 {
		return Snapshot{}, false
	}
	return t.snapshots[len(t.snapshots)-2], true
}

// Delta compares metric between the two most recent snapshots. It returns
// false when fewer than two snapshots exist or the metric is unknown.
func (t *Tracker) Delta(metric Metric) (Delta, bool) {
	latest, ok := t.Latest()
	if !ok {
		return Delta{}, false
	}
	previous, ok := t.Previous()
	if !ok {
		return Delta{}, false
	}
	cur, ok := latest.Metrics.Value(metric)
	if !ok {
		return Delta{}, false
	}
	prev, _ := previous.Metrics.Value(metric)

	d := Delta{Metric: metric, Direction: Unchanged}
	switch diff := cur - prev; {
	case diff > 0:
		d.Direction = Increase
		d.Magnitude = diff
	case diff < 0:
		d.Direction = Decrease
		d.Magnitude = -diff
	}
	return d, true
}
