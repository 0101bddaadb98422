package services

import (
	"fmt"
	"strings"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
	"trekhub/internal/utils"
)

const reportWidth = 80

var (
	heavyRule = strings.Repeat("=", reportWidth)
	lightRule = strings.Repeat("-", reportWidth)
)

// reportWriter is a small line-oriented builder for the fixed-width report.
type reportWriter struct {
	b strings.Builder
}

func (w *reportWriter) line(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *reportWriter) blank() { w.b.WriteByte('\n') }

func (w *reportWriter) banner(title string) {
	w.line("%s", heavyRule)
	pad := (reportWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	w.line("%s%s", strings.Repeat(" ", pad), title)
	w.line("%s", heavyRule)
}

func (w *reportWriter) section(title string) {
	w.blank()
	w.line("%s", strings.ToUpper(title))
	w.line("%s", lightRule)
}

func (w *reportWriter) field(label, value string) {
	w.line("  %-24s %s", label+":", value)
}

// RenderGuideReport produces the plain-text trek guide report served for
// the "pdf" format.
func RenderGuideReport(records []models.ExportRecord, s Summary, meta ExportMeta) []byte {
	w := &reportWriter{}

	w.banner("TREK HUB INDIA - TREK GUIDE REPORT")
	w.line("Generated: %s", meta.ExportedAt.Format("2006-01-02 15:04 MST"))
	w.line("Cohort:    %s", cohortLabel(meta.Cohort))
	w.line("Records:   %d of %d bookings queried", len(records), meta.TotalQueried)

	writeExecutiveSummary(w, s)
	writeHighPriority(w, records)

	w.section("Detailed booking information")
	if len(records) == 0 {
		w.line("  No bookings match the selected filters.")
	}
	for i, r := range records {
		writeBookingDetail(w, i+1, len(records), r)
	}

	writeChecklist(w, s)
	writeEmergencyReference(w, records)

	w.blank()
	w.line("%s", heavyRule)
	w.line("End of report")
	return []byte(w.b.String())
}

func writeExecutiveSummary(w *reportWriter, s Summary) {
	w.section("Executive summary")
	w.field("Total bookings", fmt.Sprintf("%d", s.TotalBookings))
	w.field("Total participants", fmt.Sprintf("%d", s.TotalParticipants))
	w.field("Average group size", fmt.Sprintf("%.2f", s.AverageGroupSize))
	w.field("Total revenue", utils.FormatINR(s.TotalRevenue))

	w.blank()
	w.line("  Safety overview")
	w.field("High risk", fmt.Sprintf("%d (%.1f%%)", s.HighRiskCount, Percent(s.HighRiskCount, s.TotalBookings)))
	w.field("Medical conditions", fmt.Sprintf("%d (%.1f%%)", s.MedicalConditionsCount, Percent(s.MedicalConditionsCount, s.TotalBookings)))
	w.field("Fitness consent missing", fmt.Sprintf("%d (%.1f%%)", s.FitnessConsentMissing, Percent(s.FitnessConsentMissing, s.TotalBookings)))
	first := s.ExperienceBreakdown[domain.ExperienceBeginner] + s.ExperienceBreakdown[domain.ExperienceNotSpecified]
	w.field("First-time trekkers", fmt.Sprintf("%d (%.1f%%)", first, Percent(first, s.TotalBookings)))
}

func writeHighPriority(w *reportWriter, records []models.ExportRecord) {
	w.section("High priority - high risk participants")
	n := 0
	for _, r := range records {
		if r.RiskAssessment != domain.RiskHigh {
			continue
		}
		n++
		w.line("  [%d] %s - %s", n, r.CustomerName, r.TrekName)
		w.field("Booking ID", r.BookingID)
		w.field("Age", ageLabel(r.CustomerAge))
		w.field("Experience", r.ExperienceLevel)
		w.field("Medical conditions", r.MedicalConditions)
		w.field("Medications", r.Medications)
		w.field("Recent illness", r.RecentIllness)
		w.field("Emergency contact", r.EmergencyContactName+" / "+r.EmergencyContactPhone)
		w.field("Slot date", r.SlotDate)
		w.blank()
	}
	if n == 0 {
		w.line("  No high risk participants.")
	}
}

func writeBookingDetail(w *reportWriter, idx, total int, r models.ExportRecord) {
	w.blank()
	w.line("BOOKING %d OF %d  [%s RISK]", idx, total, strings.ToUpper(string(r.RiskAssessment)))
	w.line("%s", lightRule)

	w.line(" Basic information")
	w.field("Booking ID", r.BookingID)
	w.field("Customer", r.CustomerName)
	w.field("Email", r.CustomerEmail)
	w.field("Phone", r.CustomerPhone)
	w.field("Age / gender", ageLabel(r.CustomerAge)+" / "+r.CustomerGender)
	w.field("Status", r.Status)
	w.field("Payment", r.PaymentStatus)

	w.line(" Trek details")
	w.field("Trek", r.TrekName)
	w.field("Region", r.TrekRegion)
	w.field("Difficulty", r.TrekDifficulty)
	w.field("Duration", r.TrekDuration)
	w.field("Season", r.SeasonType)
	w.field("Booking date", r.BookingDate)

	w.line(" Group information")
	w.field("Participants", fmt.Sprintf("%d (%s)", r.Participants, r.GroupSize))
	w.field("Names", joinNames(r.ParticipantNames))

	w.line(" Financial")
	w.field("Base amount", utils.FormatINR(r.BaseAmount))
	w.field("GST", utils.FormatINR(r.GSTAmount))
	w.field("Total", utils.FormatINR(r.TotalAmount))
	w.field("Per person", utils.FormatINR(r.AmountPerPerson))

	w.line(" Health & safety")
	w.field("Experience", r.ExperienceLevel)
	w.field("Medical conditions", r.MedicalConditions)
	w.field("Medications", r.Medications)
	w.field("Recent illness", r.RecentIllness)
	w.field("Fitness consent", yesNo(r.FitnessConsent))
	w.field("Dietary restrictions", r.DietaryRestrictions)
	w.field("Allergies", r.Allergies)

	w.line(" Emergency contact")
	w.field("Name", r.EmergencyContactName)
	w.field("Phone", r.EmergencyContactPhone)
	w.field("Relation", r.EmergencyContactRelation)

	w.line(" Logistics")
	w.field("Pickup", r.PickupLocation)
	w.field("Transportation", yesNo(r.NeedsTransportation))
	w.field("Accommodation", r.AccommodationPreference)
	w.field("Special requirements", r.SpecialRequirements)

	w.line(" Equipment")
	w.field("Gear rental", yesNo(r.GearRental))
	w.field("Porter services", yesNo(r.PorterServices))

	w.line(" Slot information")
	w.field("Slot", r.SlotID+" on "+r.SlotDate)
	w.field("Capacity / booked", fmt.Sprintf("%d / %d", r.SlotCapacity, r.SlotBooked))
	w.field("Available", fmt.Sprintf("%d", r.SlotAvailable))
	w.field("Utilization", r.SlotUtilization)

	w.line(" Guide notes")
	for _, note := range guideNotes(r) {
		w.line("  - %s", note)
	}

	w.line(" Weather")
	w.field("Forecast", "Check closer to departure ("+r.SeasonType+" season)")

	w.line(" Administrative")
	w.field("Admin notes", r.AdminNotes)
	w.field("Source", r.BookingSource)
	w.field("Created", r.CreatedAt)
	w.field("Updated", r.UpdatedAt)
}

func guideNotes(r models.ExportRecord) []string {
	var notes []string
	if r.RiskAssessment == domain.RiskHigh {
		notes = append(notes, "High risk: brief the trek leader and keep this trekker close to the support team")
	}
	if r.MedicalConditions != noneReported {
		notes = append(notes, "Medical condition reported: carry relevant medication and confirm at base camp")
	}
	if r.ExperienceLevel == domain.ExperienceBeginner || r.ExperienceLevel == domain.ExperienceNotSpecified {
		notes = append(notes, "First-time trekker: extra acclimatization guidance")
	}
	if r.CustomerAge > maxSafeAge {
		notes = append(notes, "Senior trekker: monitor pace and oxygen levels")
	} else if r.CustomerAge > 0 && r.CustomerAge < minSafeAge {
		notes = append(notes, "Minor: guardian consent required")
	}
	if !r.FitnessConsent {
		notes = append(notes, "Fitness consent not recorded: collect before departure")
	}
	if len(notes) == 0 {
		notes = append(notes, "No special notes")
	}
	return notes
}

func writeChecklist(w *reportWriter, s Summary) {
	w.section("Guide checklist")
	items := []string{
		fmt.Sprintf("Review %d high risk participant(s) with the trek leader", s.HighRiskCount),
		fmt.Sprintf("Carry medical kit for %d participant(s) with medical conditions", s.MedicalConditionsCount),
		fmt.Sprintf("Collect fitness consent from %d participant(s)", s.FitnessConsentMissing),
		fmt.Sprintf("Arrange transportation for %d booking(s)", s.TransportationNeeded),
		fmt.Sprintf("Prepare rental gear for %d booking(s)", s.GearRentalNeeded),
		fmt.Sprintf("Confirm porters for %d booking(s)", s.PorterServicesNeeded),
		fmt.Sprintf("Check %d special requirement(s)", s.SpecialRequestCount),
		"Collect dietary restrictions and allergies at check-in",
		"Verify emergency contacts before departure",
		"Share weather briefing the evening before the trek",
	}
	for _, item := range items {
		w.line("  [ ] %s", item)
	}
}

func writeEmergencyReference(w *reportWriter, records []models.ExportRecord) {
	w.section("Emergency contact quick reference")
	if len(records) == 0 {
		w.line("  No contacts.")
		return
	}
	for _, r := range records {
		w.line("  %-24s %-24s %s", truncate(r.CustomerName, 24), truncate(r.EmergencyContactName, 24), r.EmergencyContactPhone)
	}
}

func cohortLabel(c domain.Cohort) string {
	if c == "" {
		return string(domain.CohortAll)
	}
	return string(c)
}

func ageLabel(age int) string {
	if age <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%d", age)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}
