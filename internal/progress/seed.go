package progress

import (
	"fmt"
	"time"
)

// SeedSnapshot returns the baseline snapshot taken with the analysis photo.
func SeedSnapshot(photoRef string, date time.Time) Snapshot {
	return Snapshot{
		Date:     date,
		PhotoRef: photoRef,
		Metrics: Metrics{
			Texture:          68,
			Spots:            65,
			Oiliness:         70,
			Uniformity:       72,
			FacialDefinition: 75,
		},
	}
}

// SimulatedFollowUp returns the canned follow-up snapshot recorded when the
// user adds a new progress photo.
func SimulatedFollowUp(photoRef string, date time.Time) Snapshot {
	return Snapshot{
		Date:     date,
		PhotoRef: photoRef,
		Metrics: Metrics{
			Texture:          72,
			Spots:            70,
			Oiliness:         68,
			Uniformity:       75,
			FacialDefinition: 78,
		},
	}
}

// Insight is a short headline with supporting text.
type Insight struct {
	Headline string
	Body     string
	Positive bool
}

// Insights derives the progress tab's commentary from the texture and
// facial definition deltas.
func Insights(t *Tracker) []Insight {
	tex, ok := t.Delta(Texture)
	if !ok {
		return []Insight{{
			Headline: "Comece sua linha do tempo",
			Body:     "Adicione uma nova foto para comparar sua evolução.",
			Positive: true,
		}}
	}

	var out []Insight
	switch tex.Direction {
	case Increase:
		out = append(out, Insight{
			Headline: "Ótimo progresso!",
			Body:     fmt.Sprintf("Sua textura de pele melhorou %d%% desde a última foto.", tex.Magnitude),
			Positive: true,
		})
	case Decrease:
		out = append(out, Insight{
			Headline: "Atenção à rotina",
			Body:     fmt.Sprintf("Sua textura de pele caiu %d%% desde a última foto.", tex.Magnitude),
		})
	default:
		out = append(out, Insight{
			Headline: "Textura estável",
			Body:     "Sua textura de pele se manteve desde a última foto.",
			Positive: true,
		})
	}

	if def, _ := t.Delta(FacialDefinition); def.Direction == Increase {
		out = append(out, Insight{
			Headline: "Continue assim!",
			Body:     "A definição facial está melhorando consistentemente.",
			Positive: true,
		})
	}
	return out
}
