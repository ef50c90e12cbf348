package catalog

// Risk is the severity tier attached to a question.
type Risk string

const (
	RiskHigh   Risk = "high"
	RiskMedium Risk = "medium"
	RiskLow    Risk = "low"
)

// RiskLabel maps a risk tier to its display label.
var RiskLabel = map[Risk]string{
	RiskHigh:   "High",
	RiskMedium: "Medium",
	RiskLow:    "Low",
}

// Question is a single checklist item within a phase. Never mutated at runtime.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Risk     Risk   `json:"risk"`
	Guidance string `json:"guidance"`
}

// Phase is one stage of the inquiry lifecycle with its ordered questions.
type Phase struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// PhaseQuestion is a question paired with its owning phase context.
type PhaseQuestion struct {
	Question
	PhaseID    string `json:"phaseId"`
	PhaseName  string `json:"phaseName"`
	PhaseColor string `json:"phaseColor"`
}

// Phases returns the fixed phase list in canonical display order.
func Phases() []Phase {
	return phases
}

// AllQuestions returns every question in phase order with phase context attached.
func AllQuestions() []PhaseQuestion {
	out := make([]PhaseQuestion, 0, TotalQuestionCount())
	for _, p := range phases {
		for _, q := range p.Questions {
			out = append(out, PhaseQuestion{
				Question:   q,
				PhaseID:    p.ID,
				PhaseName:  p.Name,
				PhaseColor: p.Color,
			})
		}
	}
	return out
}

// TotalQuestionCount returns the number of questions across all phases.
func TotalQuestionCount() int {
	n := 0
	for _, p := range phases {
		n += len(p.Questions)
	}
	return n
}

// PhaseByID returns the phase with the given id, or false if unknown.
func PhaseByID(id string) (Phase, bool) {
	for _, p := range phases {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// QuestionByID returns the question with the given id and its phase context.
// Question ids are globally unique across phases.
func QuestionByID(id string) (PhaseQuestion, bool) {
	for _, p := range phases {
		for _, q := range p.Questions {
			if q.ID == id {
				return PhaseQuestion{
					Question:   q,
					PhaseID:    p.ID,
					PhaseName:  p.Name,
					PhaseColor: p.Color,
				}, true
			}
		}
	}
	return PhaseQuestion{}, false
}
