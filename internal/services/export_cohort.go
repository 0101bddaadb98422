package services

import (
	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
)

var cohortPredicates = map[domain.Cohort]func(models.ExportRecord) bool{
	domain.CohortHighRisk: func(r models.ExportRecord) bool {
		return r.RiskAssessment == domain.RiskHigh
	},
	domain.CohortMedicalConcerns: func(r models.ExportRecord) bool {
		return r.MedicalConditions != noneReported || r.Medications != noneReported || r.RecentIllness != noneReported
	},
	domain.CohortFirstTime: func(r models.ExportRecord) bool {
		return r.ExperienceLevel == domain.ExperienceBeginner || r.ExperienceLevel == domain.ExperienceNotSpecified
	},
	domain.CohortExperienced: func(r models.ExportRecord) bool {
		return r.ExperienceLevel == domain.ExperienceAdvanced || r.ExperienceLevel == domain.ExperienceIntermediate
	},
}

// FilterCohort keeps the records matching cohort, in their original order.
// CohortAll (and any key without a predicate) returns the input as is.
func FilterCohort(records []models.ExportRecord, cohort domain.Cohort) []models.ExportRecord {
	keep, ok := cohortPredicates[cohort]
	if !ok {
		return records
	}
	out := make([]models.ExportRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
