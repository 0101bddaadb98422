package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalBookings)
	assert.Zero(t, s.TotalRevenue)
	assert.Zero(t, s.AverageGroupSize)
	assert.NotNil(t, s.StatusBreakdown)
	assert.NotNil(t, s.RegionBreakdown)
	assert.NotNil(t, s.ExperienceBreakdown)
	assert.NotNil(t, s.RiskAssessmentBreakdown)
	assert.NotNil(t, s.SeasonBreakdown)
	assert.NotNil(t, s.GroupSizeBreakdown)
}

func TestSummarize(t *testing.T) {
	records := []models.ExportRecord{
		{
			Status: domain.StatusConfirmed, TrekRegion: "Uttarakhand", ExperienceLevel: domain.ExperienceBeginner,
			RiskAssessment: domain.RiskHigh, SeasonType: domain.SeasonSpring, GroupSize: domain.GroupLarge,
			Participants: 5, TotalAmount: 60000, MedicalConditions: "Asthma", SpecialRequirements: "Vegan meals",
			NeedsTransportation: true, GearRental: true, FitnessConsent: false,
		},
		{
			Status: domain.StatusConfirmed, TrekRegion: "Himachal", ExperienceLevel: domain.ExperienceAdvanced,
			RiskAssessment: domain.RiskLow, SeasonType: domain.SeasonSpring, GroupSize: domain.GroupSmall,
			Participants: 2, TotalAmount: 24000, MedicalConditions: noneReported, SpecialRequirements: noneText,
			PorterServices: true, FitnessConsent: true,
		},
		{
			Status: domain.StatusPendingApproval, TrekRegion: "Uttarakhand", ExperienceLevel: domain.ExperienceAdvanced,
			RiskAssessment: domain.RiskLow, SeasonType: domain.SeasonWinter, GroupSize: domain.GroupSolo,
			Participants: 1, TotalAmount: 15500.5, MedicalConditions: noneReported, SpecialRequirements: notAvailable,
			FitnessConsent: true,
		},
	}
	s := Summarize(records)

	assert.Equal(t, 3, s.TotalBookings)
	assert.InDelta(t, 99500.5, s.TotalRevenue, 0.001)
	assert.Equal(t, 8, s.TotalParticipants)
	assert.Equal(t, 2.67, s.AverageGroupSize)
	assert.Equal(t, map[string]int{domain.StatusConfirmed: 2, domain.StatusPendingApproval: 1}, s.StatusBreakdown)
	assert.Equal(t, map[string]int{"Uttarakhand": 2, "Himachal": 1}, s.RegionBreakdown)
	assert.Equal(t, map[string]int{"High": 1, "Low": 2}, s.RiskAssessmentBreakdown)
	assert.Equal(t, map[string]int{domain.SeasonSpring: 2, domain.SeasonWinter: 1}, s.SeasonBreakdown)
	assert.Equal(t, 1, s.GroupSizeBreakdown[domain.GroupLarge])
	assert.Equal(t, 1, s.MedicalConditionsCount)
	assert.Equal(t, 1, s.HighRiskCount)
	assert.Equal(t, 1, s.FitnessConsentMissing)
	assert.Equal(t, 1, s.TransportationNeeded)
	assert.Equal(t, 1, s.GearRentalNeeded)
	assert.Equal(t, 1, s.PorterServicesNeeded)
	assert.Equal(t, 1, s.SpecialRequestCount)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 100.0, Percent(4, 4))
}
