package domain

import "strings"

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Booking statuses stored in bookings.status.
const (
	StatusPendingApproval = "pending_approval"
	StatusConfirmed       = "confirmed"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

// RiskLevel is the three-step safety triage of a booking.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Escalate moves one level up, saturating at High.
func (r RiskLevel) Escalate() RiskLevel {
	switch r {
	case RiskHigh, RiskMedium:
		return RiskHigh
	default:
		return RiskMedium
	}
}

// Rank orders levels for comparisons: Low < Medium < High.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

const (
	SeasonSpring      = "Spring"
	SeasonMonsoon     = "Monsoon"
	SeasonPostMonsoon = "Post-Monsoon"
	SeasonWinter      = "Winter"
	SeasonUnknown     = "Unknown"
)

const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
	ExperienceNotSpecified = "Not Specified"
)

const (
	GroupSolo  = "Solo"
	GroupSmall = "Small Group"
	GroupLarge = "Large Group"
)

// Cohort selects the in-memory filter applied after enrichment.
type Cohort string

const (
	CohortAll             Cohort = "all"
	CohortHighRisk        Cohort = "high_risk"
	CohortMedicalConcerns Cohort = "medical_concerns"
	CohortFirstTime       Cohort = "first_time"
	CohortExperienced     Cohort = "experienced"
)

// ParseCohort accepts an empty value as "all".
func ParseCohort(s string) (Cohort, error) {
	c := Cohort(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case "":
		return CohortAll, nil
	case CohortAll, CohortHighRisk, CohortMedicalConcerns, CohortFirstTime, CohortExperienced:
		return c, nil
	}
	return "", ValidationError{Field: "userFilter", Msg: "unsupported value " + quote(s)}
}

// ExportFormat is the output representation of an export.
type ExportFormat string

const (
	FormatCSV   ExportFormat = "csv"
	FormatJSON  ExportFormat = "json"
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// ParseExportFormat accepts an empty value as csv.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatExcel, FormatPDF:
		return f, nil
	}
	return "", ValidationError{Field: "format", Msg: "unsupported export format " + quote(s) + " (use csv, json, excel or pdf)"}
}

func quote(s string) string {
	return `"` + s + `"`
}
