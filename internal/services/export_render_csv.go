package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"trekhub/internal/domain/models"
)

// csvHeaders is the column order of the CSV and Excel exports.
var csvHeaders = []string{
	// identity
	"Booking ID", "Customer Name", "Email", "Phone", "Age", "Gender",
	// trek
	"Trek Name", "Trek Slug", "Region", "Difficulty", "Duration",
	// booking
	"Booking Date", "Status", "Payment Status", "Season", "Participants", "Participant Names", "Group Size",
	"Base Amount", "GST Amount", "Total Amount", "Amount Per Person",
	// health
	"Experience Level", "Medical Conditions", "Medications", "Recent Illness", "Fitness Consent",
	"Risk Assessment", "Dietary Restrictions", "Allergies",
	// emergency
	"Emergency Contact Name", "Emergency Contact Phone", "Emergency Contact Relation",
	// logistics
	"Pickup Location", "Needs Transportation", "Gear Rental", "Porter Services", "Special Requirements", "Accommodation",
	// slot
	"Slot ID", "Slot Date", "Slot Capacity", "Slot Booked", "Slot Available", "Slot Utilization",
	// admin
	"Admin Notes", "Booking Source", "Created At", "Updated At",
}

// RenderCSV writes the header row and one row per record. encoding/csv
// quotes only fields that contain separators, quotes or line breaks, so
// numeric columns stay bare.
func RenderCSV(records []models.ExportRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write(csvRow(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRow(r models.ExportRecord) []string {
	return []string{
		r.BookingID, r.CustomerName, r.CustomerEmail, r.CustomerPhone, strconv.Itoa(r.CustomerAge), r.CustomerGender,
		r.TrekName, r.TrekSlug, r.TrekRegion, r.TrekDifficulty, r.TrekDuration,
		r.BookingDate, r.Status, r.PaymentStatus, r.SeasonType, strconv.Itoa(r.Participants), joinNames(r.ParticipantNames), r.GroupSize,
		formatAmount(r.BaseAmount), formatAmount(r.GSTAmount), formatAmount(r.TotalAmount), formatAmount(r.AmountPerPerson),
		r.ExperienceLevel, r.MedicalConditions, r.Medications, r.RecentIllness, yesNo(r.FitnessConsent),
		string(r.RiskAssessment), r.DietaryRestrictions, r.Allergies,
		r.EmergencyContactName, r.EmergencyContactPhone, r.EmergencyContactRelation,
		r.PickupLocation, yesNo(r.NeedsTransportation), yesNo(r.GearRental), yesNo(r.PorterServices), r.SpecialRequirements, r.AccommodationPreference,
		r.SlotID, r.SlotDate, strconv.Itoa(r.SlotCapacity), strconv.Itoa(r.SlotBooked), strconv.Itoa(r.SlotAvailable), r.SlotUtilization,
		r.AdminNotes, r.BookingSource, r.CreatedAt, r.UpdatedAt,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return notAvailable
	}
	return strings.Join(names, "; ")
}
