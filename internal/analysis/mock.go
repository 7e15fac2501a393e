package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/glowpro/glowpro/internal/quiz"
)

// DefaultDelay is how long MockAnalyzer pretends to work.
const DefaultDelay = 3 * time.Second

// MockAnalyzer returns a fixed Result after an artificial delay. It never
// looks at the photo.
type MockAnalyzer struct {
	delay time.Duration

	mu    sync.Mutex
	calls int
}

// NewMockAnalyzer creates a MockAnalyzer. A negative delay is treated as 0.
func NewMockAnalyzer(delay time.Duration) *MockAnalyzer {
	if delay < 0 {
		delay = 0
	}
	return &MockAnalyzer{delay: delay}
}

// Analyze waits for the configured delay, then returns the canned result.
// Cancelling ctx during the wait returns *ErrTimeout.
func (m *MockAnalyzer) Analyze(ctx context.Context, _ *Photo, answers quiz.Answers) (*Result, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, &ErrTimeout{Err: ctx.Err()}
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, &ErrTimeout{Err: err}
	}

	return MockResult(answers), nil
}

// Name returns "mock".
func (m *MockAnalyzer) Name() string {
	return "mock"
}

// CallCount returns the number of Analyze calls made.
func (m *MockAnalyzer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockResult builds the canned analysis. Only the gender answer affects it.
func MockResult(answers quiz.Answers) *Result {
	r := &Result{
		Symmetry:           85,
		AestheticPotential: 78,
		FaceShape:          "Oval",
		Strengths: []string{
			"Estrutura óssea bem definida",
			"Simetria facial equilibrada",
			"Proporções harmoniosas",
		},
		Improvements: []string{
			"Hidratação da pele",
			"Redução de olheiras",
			"Uniformização do tom",
		},
		SkinHydration: 65,
		PoresScore:    72,
		TextureScore:  68,
		Recommendations: Recommendations{
			Haircut:  "Corte médio com volume no topo",
			Eyebrows: "Sobrancelhas naturais com leve definição",
			Lighting: "Luz natural lateral para destacar estrutura facial",
		},
	}
	if answers.Text(quiz.IDGender) == quiz.GenderMale {
		r.Recommendations.Beard = "Barba curta e bem aparada"
	}
	return r
}
