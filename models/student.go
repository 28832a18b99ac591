package models

const (
	CourseCivilEngineering = "Engenharia Civil"
	CourseAdministration   = "Administração"

	RiskHigh   = "Alto"
	RiskMedium = "Médio"

	ReasonFinancial = "Situação Financeira"
	ReasonAcademic  = "Adaptação Acadêmica"

	MentorRicardo = "Dr. Ricardo G."
	MentorHelena  = "Prof. Helena S."
)

type StudentViewModel struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Course     string `json:"course"`
	Risk       string `json:"risk"`
	Percentage string `json:"percentage"`
	Reason     string `json:"reason"`
	Mentor     string `json:"mentor"`
}

func (s StudentViewModel) IsHighRisk() bool {
	return s.Risk == RiskHigh
}

// RiskClass is the CSS modifier used by both list views.
func (s StudentViewModel) RiskClass() string {
	if s.IsHighRisk() {
		return "high"
	}
	return "medium"
}

func (s StudentViewModel) RiskIcon() string {
	if s.IsHighRisk() {
		return "fas fa-exclamation-triangle"
	}
	return "fas fa-bell"
}
