package quiz

import "math"

// Outcome is the result of a call to Advance.
type Outcome int

const (
	Rejected  Outcome = iota // precondition not met; nothing changed
	Moved                    // answer committed, engine moved to the next question
	Completed                // last answer committed, quiz finished
)

// Engine walks the user through an ordered list of questions, buffering
// the current selection and committing answers as the user advances.
//
// The engine is not safe for concurrent use; it is owned by a single
// Bubble Tea screen.
type Engine struct {
	questions []Question
	index     int
	answers   Answers
	buffer    []string
	complete  bool
}

// NewEngine creates an engine positioned at the first question.
// It panics if questions is empty.
func NewEngine(questions []Question) *Engine {
	if len(questions) == 0 {
		panic("quiz: engine needs at least one question")
	}
	return &Engine{
		questions: questions,
		answers:   make(Answers),
	}
}

// Current returns the question at the current index.
func (e *Engine) Current() Question {
	return e.questions[e.index]
}

// Index returns the 0-based position of the current question.
func (e *Engine) Index() int { return e.index }

// Len returns the number of questions.
func (e *Engine) Len() int { return len(e.questions) }

// IsLast reports whether the current question is the final one.
func (e *Engine) IsLast() bool { return e.index == len(e.questions)-1 }

// Complete reports whether the final question has been confirmed.
func (e *Engine) Complete() bool { return e.complete }

// Progress returns the position through the quiz as a whole percentage,
// counting the current question as reached.
func (e *Engine) Progress() int {
	return int(math.Round(float64(e.index+1) / float64(len(e.questions)) * 100))
}

// Selected reports whether option is in the current selection buffer.
func (e *Engine) Selected(option string) bool {
	for _, o := range e.buffer {
		if o == option {
			return true
		}
	}
	return false
}

// Selection returns a copy of the current selection buffer.
func (e *Engine) Selection() []string {
	return append([]string(nil), e.buffer...)
}

// Answers returns a copy of the committed answers.
func (e *Engine) Answers() Answers {
	return e.answers.Clone()
}

// CanAdvance reports whether Advance would be accepted.
func (e *Engine) CanAdvance() bool {
	if e.complete {
		return false
	}
	return e.Current().Kind == KindText || len(e.buffer) > 0
}

// SelectOption updates the selection buffer. Multi-select questions toggle
// membership; single-select questions replace the buffer. Free-text
// questions and options the question does not offer are ignored.
func (e *Engine) SelectOption(option string) {
	if e.complete {
		return
	}
	q := e.Current()
	if q.Kind == KindText || !q.HasOption(option) {
		return
	}

	if q.Kind == KindSingle {
		e.buffer = []string{option}
		return
	}

	for i, o := range e.buffer {
		if o == option {
			e.buffer = append(e.buffer[:i:i], e.buffer[i+1:]...)
			return
		}
	}
	e.buffer = append(e.buffer, option)
}

// SetText records value as the answer to the current free-text question.
// It is ignored for choice questions.
func (e *Engine) SetText(value string) {
	if e.complete || e.Current().Kind != KindText {
		return
	}
	e.answers[e.Current().ID] = Answer{Kind: KindText, Text: value}
}

// Advance commits the current selection and moves forward. When the last
// question is confirmed the engine completes and returns the full answer
// set; this happens exactly once.
func (e *Engine) Advance() (Outcome, Answers) {
	if !e.CanAdvance() {
		return Rejected, nil
	}

	q := e.Current()
	switch q.Kind {
	case KindMulti:
		e.answers[q.ID] = Answer{Kind: KindMulti, Choices: e.Selection()}
	case KindSingle:
		e.answers[q.ID] = Answer{Kind: KindSingle, Text: e.buffer[0]}
	case KindText:
		if _, ok := e.answers[q.ID]; !ok {
			e.answers[q.ID] = Answer{Kind: KindText}
		}
	}
	e.buffer = nil

	if e.IsLast() {
		e.complete = true
		return Completed, e.Answers()
	}
	e.index++
	return Moved, nil
}

// Retreat moves back one question and clears the selection buffer. The
// answer already committed for the question is kept but not restored into
// the buffer. No-op on the first question.
func (e *Engine) Retreat() bool {
	if e.complete || e.index == 0 {
		return false
	}
	e.index--
	e.buffer = nil
	return true
}
