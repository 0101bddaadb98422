package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
	"trekhub/internal/utils"
)

// TrekSheetService renders the per-booking trek sheet PDF handed to guides.
type TrekSheetService struct {
	Bookings     BookingReader
	Treks        TrekReader
	Slots        SlotReader
	Profiles     ProfileReader
	Participants ParticipantReader
	Enricher     Enricher
	RequestID    string
	Loader       func(ctx context.Context, bookingID string) (models.ExportRecord, error)
}

// GenerateTrekSheet returns the PDF bytes and a download filename.
func (s TrekSheetService) GenerateTrekSheet(ctx context.Context, bookingID string) ([]byte, string, error) {
	rec, err := s.loadRecord(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_trek_sheet", "booking_id="+rec.BookingID)
	return buildTrekSheetPDF(rec, utils.FormatDateTime(s.Enricher.now()))
}

func (s TrekSheetService) loadRecord(ctx context.Context, bookingID string) (models.ExportRecord, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			return models.ExportRecord{}, err
		}
		return models.ExportRecord{}, domain.InternalError{Msg: "failed to fetch booking", Err: err}
	}

	l, err := loadLookups(ctx, lookupSources{s.Treks, s.Slots, s.Profiles, s.Participants}, []models.Booking{b})
	if err != nil {
		return models.ExportRecord{}, domain.InternalError{Msg: "failed to fetch related records", Err: err}
	}
	return s.Enricher.EnrichOne(b, l), nil
}

func buildTrekSheetPDF(r models.ExportRecord, generatedAt string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trek Sheet", false)
	pdf.SetAuthor("Trek Hub India", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TREK SHEET")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+generatedAt+"   Risk: "+string(r.RiskAssessment))
	pdf.Ln(10)

	sections := []struct {
		title string
		lines [][2]string
	}{
		{"Trekker", [][2]string{
			{"Booking ID", r.BookingID},
			{"Name", r.CustomerName},
			{"Phone", r.CustomerPhone},
			{"Email", r.CustomerEmail},
			{"Age / Gender", ageLabel(r.CustomerAge) + " / " + r.CustomerGender},
		}},
		{"Trek", [][2]string{
			{"Trek", r.TrekName},
			{"Region", r.TrekRegion},
			{"Difficulty", r.TrekDifficulty},
			{"Duration", r.TrekDuration},
			{"Departure", r.SlotDate},
			{"Season", r.SeasonType},
		}},
		{"Group", [][2]string{
			{"Participants", fmt.Sprintf("%d (%s)", r.Participants, r.GroupSize)},
			{"Names", joinNames(r.ParticipantNames)},
			{"Total", utils.FormatINR(r.TotalAmount)},
			{"Per person", utils.FormatINR(r.AmountPerPerson)},
		}},
		{"Health & Safety", [][2]string{
			{"Experience", r.ExperienceLevel},
			{"Medical", r.MedicalConditions},
			{"Medications", r.Medications},
			{"Recent illness", r.RecentIllness},
			{"Fitness consent", yesNo(r.FitnessConsent)},
		}},
		{"Emergency Contact", [][2]string{
			{"Name", r.EmergencyContactName},
			{"Phone", r.EmergencyContactPhone},
			{"Relation", r.EmergencyContactRelation},
		}},
		{"Logistics", [][2]string{
			{"Pickup", r.PickupLocation},
			{"Transportation", yesNo(r.NeedsTransportation)},
			{"Gear rental", yesNo(r.GearRental)},
			{"Porter", yesNo(r.PorterServices)},
			{"Special requirements", r.SpecialRequirements},
		}},
		{"Slot", [][2]string{
			{"Slot ID", r.SlotID},
			{"Capacity / Booked", fmt.Sprintf("%d / %d", r.SlotCapacity, r.SlotBooked)},
			{"Available", fmt.Sprintf("%d", r.SlotAvailable)},
			{"Utilization", r.SlotUtilization},
		}},
	}

	for _, sec := range sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, sec.title)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, kv := range sec.lines {
			pdf.CellFormat(50, 6, kv[0], "", 0, "", false, 0, "")
			pdf.MultiCell(0, 6, tr(utils.Safe(kv[1], "-")), "", "", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Guide notes: "+strings.Join(guideNotes(r), "; ")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-trek-sheet-%s.pdf", productName, utils.SafeFilenamePart(r.BookingID))
	return buf.Bytes(), filename, nil
}
