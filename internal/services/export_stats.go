package services

import (
	"math"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
)

// Summary holds the aggregates shared by the JSON and text reports.
type Summary struct {
	TotalBookings           int            `json:"totalBookings"`
	TotalRevenue            float64        `json:"totalRevenue"`
	TotalParticipants       int            `json:"totalParticipants"`
	AverageGroupSize        float64        `json:"averageGroupSize"`
	StatusBreakdown         map[string]int `json:"statusBreakdown"`
	RegionBreakdown         map[string]int `json:"regionBreakdown"`
	ExperienceBreakdown     map[string]int `json:"experienceBreakdown"`
	RiskAssessmentBreakdown map[string]int `json:"riskAssessmentBreakdown"`
	SeasonBreakdown         map[string]int `json:"seasonBreakdown"`
	GroupSizeBreakdown      map[string]int `json:"groupSizeBreakdown"`
	MedicalConditionsCount  int            `json:"medicalConditionsCount"`
	HighRiskCount           int            `json:"highRiskCount"`
	FitnessConsentMissing   int            `json:"fitnessConsentMissing"`
	TransportationNeeded    int            `json:"transportationNeeded"`
	GearRentalNeeded        int            `json:"gearRentalNeeded"`
	PorterServicesNeeded    int            `json:"porterServicesNeeded"`
	SpecialRequestCount     int            `json:"specialRequirementsCount"`
}

// Summarize folds the final record set into aggregates. Maps are always
// non-nil so empty exports still serialize as {}.
func Summarize(records []models.ExportRecord) Summary {
	s := Summary{
		TotalBookings:           len(records),
		StatusBreakdown:         map[string]int{},
		RegionBreakdown:         map[string]int{},
		ExperienceBreakdown:     map[string]int{},
		RiskAssessmentBreakdown: map[string]int{},
		SeasonBreakdown:         map[string]int{},
		GroupSizeBreakdown:      map[string]int{},
	}
	for _, r := range records {
		s.TotalRevenue += r.TotalAmount
		s.TotalParticipants += r.Participants
		s.StatusBreakdown[r.Status]++
		s.RegionBreakdown[r.TrekRegion]++
		s.ExperienceBreakdown[r.ExperienceLevel]++
		s.RiskAssessmentBreakdown[string(r.RiskAssessment)]++
		s.SeasonBreakdown[r.SeasonType]++
		s.GroupSizeBreakdown[r.GroupSize]++
		if r.MedicalConditions != noneReported {
			s.MedicalConditionsCount++
		}
		if r.RiskAssessment == domain.RiskHigh {
			s.HighRiskCount++
		}
		if !r.FitnessConsent {
			s.FitnessConsentMissing++
		}
		if r.NeedsTransportation {
			s.TransportationNeeded++
		}
		if r.GearRental {
			s.GearRentalNeeded++
		}
		if r.PorterServices {
			s.PorterServicesNeeded++
		}
		if hasSpecialRequirements(r) {
			s.SpecialRequestCount++
		}
	}
	if len(records) > 0 {
		s.AverageGroupSize = math.Round(float64(s.TotalParticipants)/float64(len(records))*100) / 100
	}
	return s
}

// Percent is share of total rounded to one decimal; 0 when total is 0.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func hasSpecialRequirements(r models.ExportRecord) bool {
	return r.SpecialRequirements != noneText && r.SpecialRequirements != notAvailable
}
