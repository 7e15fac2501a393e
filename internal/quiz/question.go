package quiz

// Kind identifies how a question collects its answer.
type Kind string

const (
	KindSingle Kind = "single"
	KindMulti  Kind = "multi"
	KindText   Kind = "text"
)

// Question is one step of the onboarding quiz. Questions are defined at
// startup and never mutated.
type Question struct {
	ID       string
	Prompt   string
	Kind     Kind
	Options  []string
	Optional bool
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Question ids used outside the quiz package.
const (
	IDSkinType        = "skinType"
	IDProblems        = "problems"
	IDWaterIntake     = "waterIntake"
	IDSkincareRoutine = "skincareRoutine"
	IDSleepHours      = "sleepHours"
	IDSunExposure     = "sunExposure"
	IDMainGoal        = "mainGoal"
	IDCurrentProducts = "currentProducts"
	IDAge             = "age"
	IDGender          = "gender"
)

// GenderMale is the gender answer that enables beard recommendations.
const GenderMale = "Masculino"

// DefaultQuestions returns the ten onboarding questions in display order.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:      IDSkinType,
			Prompt:  "Qual é o seu tipo de pele?",
			Kind:    KindSingle,
			Options: []string{"Seca", "Oleosa", "Mista", "Sensível"},
		},
		{
			ID:      IDProblems,
			Prompt:  "Quais problemas você enfrenta atualmente?",
			Kind:    KindMulti,
			Options: []string{"Espinhas", "Manchas", "Olheiras", "Textura irregular", "Poros dilatados", "Linhas finas"},
		},
		{
			ID:      IDWaterIntake,
			Prompt:  "Quanto de água você consome por dia?",
			Kind:    KindSingle,
			Options: []string{"Menos de 1L", "1-2L", "2-3L", "Mais de 3L"},
		},
		{
			ID:     IDSkincareRoutine,
			Prompt: "Você tem uma rotina de skincare?",
			Kind:   KindSingle,
			Options: []string{
				"Não tenho",
				"Básica (limpeza)",
				"Intermediária (limpeza + hidratação)",
				"Completa (limpeza + tônico + sérum + hidratação + protetor)",
			},
		},
		{
			ID:      IDSleepHours,
			Prompt:  "Quantas horas você dorme por noite?",
			Kind:    KindSingle,
			Options: []string{"Menos de 5h", "5-6h", "7-8h", "Mais de 8h"},
		},
		{
			ID:     IDSunExposure,
			Prompt: "Qual é sua exposição ao sol?",
			Kind:   KindSingle,
			Options: []string{
				"Mínima (fico em ambientes fechados)",
				"Moderada (saio ocasionalmente)",
				"Alta (trabalho ao ar livre)",
			},
		},
		{
			ID:      IDMainGoal,
			Prompt:  "Qual é seu objetivo principal?",
			Kind:    KindSingle,
			Options: []string{"Pele mais limpa", "Aparência mais jovem", "Definição facial", "Redução de papada", "Melhora na textura"},
		},
		{
			ID:     IDCurrentProducts,
			Prompt: "Quais produtos você já usa?",
			Kind:   KindText,
		},
		{
			ID:       IDAge,
			Prompt:   "Qual é a sua idade? (opcional)",
			Kind:     KindText,
			Optional: true,
		},
		{
			ID:       IDGender,
			Prompt:   "Gênero (opcional)",
			Kind:     KindSingle,
			Options:  []string{GenderMale, "Feminino", "Prefiro não informar"},
			Optional: true,
		},
	}
}
