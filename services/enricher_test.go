package services

import (
	"testing"

	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int, name string) models.RawRecord {
	return models.RawRecord{ID: &id, Name: &name}
}

func TestEnrichExample(t *testing.T) {
	students := Enrich([]models.RawRecord{
		record(1, "Ana"),
		record(2, "Bruno"),
		record(3, "Caio"),
	})
	require.Len(t, students, 3)

	var risks, percentages, courses []string
	for _, s := range students {
		risks = append(risks, s.Risk)
		percentages = append(percentages, s.Percentage)
		courses = append(courses, s.Course)
	}

	assert.Equal(t, []string{"Alto", "Médio", "Médio"}, risks)
	assert.Equal(t, []string{"90%", "85%", "80%"}, percentages)
	assert.Equal(t, []string{"Engenharia Civil", "Administração", "Engenharia Civil"}, courses)
	assert.Equal(t, "Ana", students[0].Name)
	assert.Equal(t, 3, students[2].ID)
}

func TestEnrichDerivationRules(t *testing.T) {
	records := make([]models.RawRecord, 25)
	for i := range records {
		records[i] = record(i+100, "Aluno")
	}

	students := Enrich(records)
	require.Len(t, students, len(records))

	for i, s := range students {
		if i%2 == 0 {
			assert.Equal(t, models.CourseCivilEngineering, s.Course, "index %d", i)
			assert.Equal(t, models.MentorRicardo, s.Mentor, "index %d", i)
		} else {
			assert.Equal(t, models.CourseAdministration, s.Course, "index %d", i)
			assert.Equal(t, models.MentorHelena, s.Mentor, "index %d", i)
		}

		if i%3 == 0 {
			assert.Equal(t, models.RiskHigh, s.Risk, "index %d", i)
			assert.Equal(t, models.ReasonFinancial, s.Reason, "index %d", i)
		} else {
			assert.Equal(t, models.RiskMedium, s.Risk, "index %d", i)
			assert.Equal(t, models.ReasonAcademic, s.Reason, "index %d", i)
		}

		assert.Equal(t, i+100, s.ID)
	}

	assert.Equal(t, "0%", students[18].Percentage)
	assert.Equal(t, "-30%", students[24].Percentage)
}

func TestEnrichMissingFields(t *testing.T) {
	students := Enrich([]models.RawRecord{{}})
	require.Len(t, students, 1)
	assert.Equal(t, 0, students[0].ID)
	assert.Equal(t, "", students[0].Name)
	assert.Equal(t, models.RiskHigh, students[0].Risk)
}

func TestEnrichEmpty(t *testing.T) {
	assert.Empty(t, Enrich(nil))
}

func TestEnrichDoesNotDependOnContent(t *testing.T) {
	a := Enrich([]models.RawRecord{record(1, "Ana"), record(2, "Bruno")})
	b := Enrich([]models.RawRecord{record(9, "Zé"), record(8, "Xica")})

	for i := range a {
		assert.Equal(t, a[i].Course, b[i].Course)
		assert.Equal(t, a[i].Risk, b[i].Risk)
		assert.Equal(t, a[i].Percentage, b[i].Percentage)
		assert.Equal(t, a[i].Reason, b[i].Reason)
		assert.Equal(t, a[i].Mentor, b[i].Mentor)
	}
}
