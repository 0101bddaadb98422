package services

import (
	"encoding/json"
	"time"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
)

type jsonExport struct {
	ExportInfo    exportInfo            `json:"exportInfo"`
	Summary       Summary               `json:"summary"`
	GuideInsights guideInsights         `json:"guideInsights"`
	Bookings      []models.ExportRecord `json:"bookings"`
}

type exportInfo struct {
	ExportedAt           string            `json:"exportedAt"`
	TotalRecords         int               `json:"totalRecords"`
	TotalBookingsQueried int               `json:"totalBookingsQueried"`
	Format               string            `json:"format"`
	UserFilter           string            `json:"userFilter"`
	Filters              map[string]string `json:"filters"`
	Version              string            `json:"version"`
}

type guideInsights struct {
	HighRiskParticipants []highRiskEntry       `json:"highRiskParticipants"`
	SpecialRequirements  []specialRequirement  `json:"specialRequirements"`
	EmergencyContacts    []emergencyContactRef `json:"emergencyContacts"`
}

type highRiskEntry struct {
	BookingID         string `json:"bookingId"`
	CustomerName      string `json:"customerName"`
	TrekName          string `json:"trekName"`
	CustomerAge       int    `json:"customerAge"`
	MedicalConditions string `json:"medicalConditions"`
	ExperienceLevel   string `json:"experienceLevel"`
	EmergencyContact  string `json:"emergencyContact"`
}

type specialRequirement struct {
	BookingID           string `json:"bookingId"`
	CustomerName        string `json:"customerName"`
	TrekName            string `json:"trekName"`
	SpecialRequirements string `json:"specialRequirements"`
}

type emergencyContactRef struct {
	BookingID    string `json:"bookingId"`
	CustomerName string `json:"customerName"`
	TrekName     string `json:"trekName"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	RiskLevel    string `json:"riskLevel"`
}

// RenderJSON emits metadata, aggregates, guide insights and the records.
func RenderJSON(records []models.ExportRecord, summary Summary, meta ExportMeta) ([]byte, error) {
	filters := meta.Filters
	if filters == nil {
		filters = map[string]string{}
	}
	if records == nil {
		records = []models.ExportRecord{}
	}
	doc := jsonExport{
		ExportInfo: exportInfo{
			ExportedAt:           meta.ExportedAt.UTC().Format(time.RFC3339),
			TotalRecords:         len(records),
			TotalBookingsQueried: meta.TotalQueried,
			Format:               string(meta.Format),
			UserFilter:           string(meta.Cohort),
			Filters:              filters,
			Version:              exportFormatVer,
		},
		Summary:       summary,
		GuideInsights: buildGuideInsights(records),
		Bookings:      records,
	}
	return json.MarshalIndent(doc, "", "  ")
}

func buildGuideInsights(records []models.ExportRecord) guideInsights {
	g := guideInsights{
		HighRiskParticipants: []highRiskEntry{},
		SpecialRequirements:  []specialRequirement{},
		EmergencyContacts:    make([]emergencyContactRef, 0, len(records)),
	}
	for _, r := range records {
		if r.RiskAssessment == domain.RiskHigh {
			g.HighRiskParticipants = append(g.HighRiskParticipants, highRiskEntry{
				BookingID:         r.BookingID,
				CustomerName:      r.CustomerName,
				TrekName:          r.TrekName,
				CustomerAge:       r.CustomerAge,
				MedicalConditions: r.MedicalConditions,
				ExperienceLevel:   r.ExperienceLevel,
				EmergencyContact:  r.EmergencyContactName + " (" + r.EmergencyContactPhone + ")",
			})
		}
		if hasSpecialRequirements(r) {
			g.SpecialRequirements = append(g.SpecialRequirements, specialRequirement{
				BookingID:           r.BookingID,
				CustomerName:        r.CustomerName,
				TrekName:            r.TrekName,
				SpecialRequirements: r.SpecialRequirements,
			})
		}
		g.EmergencyContacts = append(g.EmergencyContacts, emergencyContactRef{
			BookingID:    r.BookingID,
			CustomerName: r.CustomerName,
			TrekName:     r.TrekName,
			ContactName:  r.EmergencyContactName,
			ContactPhone: r.EmergencyContactPhone,
			RiskLevel:    string(r.RiskAssessment),
		})
	}
	return g
}
