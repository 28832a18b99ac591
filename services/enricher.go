package services

import (
	"fmt"

	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/utils"
)

// Enrich derives one view-model per record. Every derived field depends only
// on the record's position in the slice.
func Enrich(records []models.RawRecord) []models.StudentViewModel {
	students := make([]models.StudentViewModel, len(records))
	for i, r := range records {
		students[i] = models.StudentViewModel{
			ID:         utils.GetIntOrZero(r.ID),
			Name:       utils.GetStringOrEmpty(r.Name),
			Course:     CourseFor(i),
			Risk:       RiskFor(i),
			Percentage: PercentageFor(i),
			Reason:     ReasonFor(i),
			Mentor:     MentorFor(i),
		}
	}
	return students
}

func CourseFor(index int) string {
	if index%2 == 0 {
		return models.CourseCivilEngineering
	}
	return models.CourseAdministration
}

func RiskFor(index int) string {
	if index%3 == 0 {
		return models.RiskHigh
	}
	return models.RiskMedium
}

// PercentageFor is not clamped; indexes past 18 yield zero or negative values.
func PercentageFor(index int) string {
	return fmt.Sprintf("%d%%", 90-index*5)
}

func ReasonFor(index int) string {
	if index%3 == 0 {
		return models.ReasonFinancial
	}
	return models.ReasonAcademic
}

func MentorFor(index int) string {
	if index%2 == 0 {
		return models.MentorRicardo
	}
	return models.MentorHelena
}
