package quiz

import (
	"encoding/json"
	"strings"
)

// Answer is the committed value for one question: a single choice, a set
// of choices, or free text depending on the question kind.
type Answer struct {
	Kind    Kind
	Text    string   // single choice or free text
	Choices []string // multi-select only
}

// String renders the answer for display. Multi-select answers are joined
// with ", ".
func (a Answer) String() string {
	if a.Kind == KindMulti {
		return strings.Join(a.Choices, ", ")
	}
	return a.Text
}

// MarshalJSON encodes a multi-select answer as an array and every other
// answer as a string.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == KindMulti {
		choices := a.Choices
		if choices == nil {
			choices = []string{}
		}
		return json.Marshal(choices)
	}
	return json.Marshal(a.Text)
}

// Answers maps question id to its committed answer.
type Answers map[string]Answer

// Text returns the string value for id, or "" when unanswered.
func (a Answers) Text(id string) string {
	ans, ok := a[id]
	if !ok {
		return ""
	}
	return ans.String()
}

// Choices returns the multi-select value for id, or nil when unanswered.
func (a Answers) Choices(id string) []string {
	ans, ok := a[id]
	if !ok || ans.Kind != KindMulti {
		return nil
	}
	out := make([]string, len(ans.Choices))
	copy(out, ans.Choices)
	return out
}

// Clone returns a deep copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, ans := range a {
		if ans.Choices != nil {
			ans.Choices = append([]string(nil), ans.Choices...)
		}
		out[id] = ans
	}
	return out
}
