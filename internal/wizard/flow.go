package wizard

import (
	"errors"
	"fmt"

	"github.com/glowpro/glowpro/internal/analysis"
	"github.com/glowpro/glowpro/internal/quiz"
)

// Stage is one of the four top-level screens.
type Stage string

const (
	StageWelcome Stage = "welcome"
	StageQuiz    Stage = "quiz"
	StagePhoto   Stage = "photo"
	StageApp     Stage = "app"
)

// ErrInvalidTransition is returned when a completion event arrives for a
// stage that is not active.
var ErrInvalidTransition = errors.New("invalid stage transition")

// Flow is the one-directional welcome → quiz → photo → app state machine.
// It also holds the data each stage hands to the next.
type Flow struct {
	stage   Stage
	answers quiz.Answers
	photo   *analysis.Photo
	result  *analysis.Result
}

// NewFlow returns a flow at the welcome stage.
func NewFlow() *Flow {
	return &Flow{stage: StageWelcome}
}

// Stage returns the active stage.
func (f *Flow) Stage() Stage { return f.stage }

// Answers returns a copy of the completed quiz answers, or nil before the
// quiz is complete.
func (f *Flow) Answers() quiz.Answers {
	if f.answers == nil {
		return nil
	}
	return f.answers.Clone()
}

// Photo returns the analyzed photo, or nil before the photo stage completes.
func (f *Flow) Photo() *analysis.Photo { return f.photo }

// Result returns the analysis result, or nil before the photo stage completes.
func (f *Flow) Result() *analysis.Result { return f.result }

// Start leaves the welcome screen.
func (f *Flow) Start() error {
	if err := f.expect(StageWelcome); err != nil {
		return err
	}
	f.stage = StageQuiz
	return nil
}

// CompleteQuiz records the answers and moves to photo capture.
func (f *Flow) CompleteQuiz(answers quiz.Answers) error {
	if err := f.expect(StageQuiz); err != nil {
		return err
	}
	f.answers = answers.Clone()
	f.stage = StagePhoto
	return nil
}

// CompletePhoto records the photo and its analysis and enters the app.
func (f *Flow) CompletePhoto(photo *analysis.Photo, result *analysis.Result) error {
	if err := f.expect(StagePhoto); err != nil {
		return err
	}
	if photo == nil || result == nil {
		return fmt.Errorf("complete photo: photo and result are required")
	}
	f.photo = photo
	f.result = result
	f.stage = StageApp
	return nil
}

func (f *Flow) expect(s Stage) error {
	if f.stage != s {
		return fmt.Errorf("%w: at %s, want %s", ErrInvalidTransition, f.stage, s)
	}
	return nil
}

// StartMsg is emitted by the welcome screen.
type StartMsg struct{}

// QuizCompletedMsg is emitted by the quiz screen with the final answers.
type QuizCompletedMsg struct {
	Answers quiz.Answers
}

// PhotoAnalyzedMsg is emitted by the photo screen once analysis succeeds.
type PhotoAnalyzedMsg struct {
	Photo  *analysis.Photo
	Result *analysis.Result
}
