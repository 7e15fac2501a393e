package quiz

import (
	"reflect"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{ID: "skinType", Kind: KindSingle, Options: []string{"Seca", "Oleosa", "Mista", "Sensível"}},
		{ID: "problems", Kind: KindMulti, Options: []string{"Espinhas", "Manchas", "Olheiras"}},
		{ID: "currentProducts", Kind: KindText},
		{ID: "gender", Kind: KindSingle, Options: []string{"Masculino", "Feminino"}},
	}
}

func TestSingleSelect_LastSelectionWins(t *testing.T) {
	e := NewEngine(testQuestions())

	e.SelectOption("Oleosa")
	e.SelectOption("Mista")
	outcome, _ := e.Advance()

	if outcome != Moved {
		t.Fatalf("outcome = %v, want Moved", outcome)
	}
	got := e.Answers()["skinType"]
	if got.Text != "Mista" {
		t.Errorf("skinType = %q, want %q", got.Text, "Mista")
	}
}

func TestMultiSelect_ToggleOff(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Seca")
	e.Advance()

	e.SelectOption("Espinhas")
	e.SelectOption("Manchas")
	e.SelectOption("Espinhas")
	e.Advance()

	got := e.Answers().Choices("problems")
	if !reflect.DeepEqual(got, []string{"Manchas"}) {
		t.Errorf("problems = %v, want [Manchas]", got)
	}
}

func TestAdvance_RejectedWithoutSelection(t *testing.T) {
	e := NewEngine(testQuestions())

	outcome, answers := e.Advance()
	if outcome != Rejected {
		t.Errorf("outcome = %v, want Rejected", outcome)
	}
	if answers != nil {
		t.Error("expected nil answers on rejection")
	}
	if e.Index() != 0 {
		t.Errorf("index = %d, want 0", e.Index())
	}
	if len(e.Answers()) != 0 {
		t.Errorf("answers = %v, want empty", e.Answers())
	}
}

func TestAdvance_FreeTextNeedsNoSelection(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Seca")
	e.Advance()
	e.SelectOption("Manchas")
	e.Advance()

	if !e.CanAdvance() {
		t.Fatal("free-text question should always allow advancing")
	}
	outcome, _ := e.Advance()
	if outcome != Moved {
		t.Fatalf("outcome = %v, want Moved", outcome)
	}

	ans, ok := e.Answers()["currentProducts"]
	if !ok {
		t.Fatal("expected an empty-string entry for the skipped free-text question")
	}
	if ans.Text != "" {
		t.Errorf("currentProducts = %q, want empty", ans.Text)
	}
}

func TestSetText_StoresDirectly(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Seca")
	e.Advance()
	e.SelectOption("Manchas")
	e.Advance()

	e.SetText("protetor")
	e.SetText("protetor solar")

	if got := e.Answers().Text("currentProducts"); got != "protetor solar" {
		t.Errorf("currentProducts = %q, want %q", got, "protetor solar")
	}
	if len(e.Selection()) != 0 {
		t.Error("SetText should not touch the selection buffer")
	}
}

func TestSetText_IgnoredOnChoiceQuestion(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SetText("Oleosa")
	if _, ok := e.Answers()["skinType"]; ok {
		t.Error("SetText should be ignored on a single-select question")
	}
}

func TestSelectOption_IgnoresUnknownOption(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Normal")
	if e.CanAdvance() {
		t.Error("unknown option should not satisfy the selection requirement")
	}
}

func TestCompletion_ExactlyOnceAtLastIndex(t *testing.T) {
	qs := testQuestions()
	e := NewEngine(qs)
	completions := 0

	steps := []func(){
		func() { e.SelectOption("Oleosa") },
		func() { e.SelectOption("Olheiras") },
		func() { e.SetText("sérum") },
		func() { e.SelectOption("Masculino") },
	}
	for i, step := range steps {
		step()
		outcome, answers := e.Advance()
		if outcome == Completed {
			completions++
			if i != len(qs)-1 {
				t.Fatalf("completed at index %d, want %d", i, len(qs)-1)
			}
			if len(answers) != len(qs) {
				t.Errorf("answers has %d entries, want %d", len(answers), len(qs))
			}
		}
	}

	// Further calls are rejected once complete.
	if outcome, _ := e.Advance(); outcome != Rejected {
		t.Errorf("advance after completion = %v, want Rejected", outcome)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
	if !e.Complete() {
		t.Error("engine should report Complete")
	}
}

func TestRetreat_NoOpAtFirstQuestion(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Seca")
	if e.Retreat() {
		t.Error("retreat at index 0 should be a no-op")
	}
	if !e.Selected("Seca") {
		t.Error("no-op retreat should not clear the buffer")
	}
}

func TestRetreat_ClearsBufferKeepsAnswer(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Sensível")
	e.Advance()
	e.SelectOption("Manchas")

	if !e.Retreat() {
		t.Fatal("expected retreat to succeed")
	}
	if e.Index() != 0 {
		t.Errorf("index = %d, want 0", e.Index())
	}
	if len(e.Selection()) != 0 {
		t.Errorf("buffer = %v, want empty", e.Selection())
	}
	if e.Answers().Text("skinType") != "Sensível" {
		t.Error("committed answer should survive retreat")
	}
	if e.Selected("Sensível") {
		t.Error("committed answer should not be restored into the buffer")
	}
}

func TestRetreatThenAdvance_SameSelectionSameAnswer(t *testing.T) {
	e := NewEngine(testQuestions())
	e.SelectOption("Seca")
	e.Advance()
	e.SelectOption("Espinhas")
	e.SelectOption("Olheiras")
	e.Advance()
	before := e.Answers().Choices("problems")

	e.Retreat()
	e.SelectOption("Espinhas")
	e.SelectOption("Olheiras")
	e.Advance()

	if after := e.Answers().Choices("problems"); !reflect.DeepEqual(before, after) {
		t.Errorf("round trip changed answer: %v -> %v", before, after)
	}
}

func TestProgress(t *testing.T) {
	e := NewEngine(DefaultQuestions())
	if e.Progress() != 10 {
		t.Errorf("Progress = %d, want 10", e.Progress())
	}
	e.SelectOption("Seca")
	e.Advance()
	if e.Progress() != 20 {
		t.Errorf("Progress = %d, want 20", e.Progress())
	}
}

func TestDefaultQuestions(t *testing.T) {
	qs := DefaultQuestions()
	if len(qs) != 10 {
		t.Fatalf("len = %d, want 10", len(qs))
	}
	seen := make(map[string]bool)
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("duplicate id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Kind == KindText && len(q.Options) != 0 {
			t.Errorf("%s: free-text question has options", q.ID)
		}
		if q.Kind != KindText && len(q.Options) == 0 {
			t.Errorf("%s: choice question has no options", q.ID)
		}
	}
	if qs[1].Kind != KindMulti {
		t.Errorf("problems kind = %s, want multi", qs[1].Kind)
	}
}

func TestAnswerMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		ans  Answer
		want string
	}{
		{"single", Answer{Kind: KindSingle, Text: "Mista"}, `"Mista"`},
		{"multi", Answer{Kind: KindMulti, Choices: []string{"Manchas"}}, `["Manchas"]`},
		{"empty multi", Answer{Kind: KindMulti}, `[]`},
		{"text", Answer{Kind: KindText}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.ans.MarshalJSON()
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
