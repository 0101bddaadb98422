package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"trekhub/internal/domain/models"
	"trekhub/internal/utils"
)

// Lookups are the related rows joined onto bookings during enrichment.
// Nil maps behave as empty.
type Lookups struct {
	Treks        map[string]models.Trek
	Slots        map[string]models.Slot
	Profiles     map[string]models.Profile
	Participants map[string][]models.Participant
}

// Enricher turns raw bookings into export records. Now is the only
// impure input; it defaults to the wall clock.
type Enricher struct {
	Now func() time.Time
}

func (e Enricher) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return utils.NowUTC()
}

// Enrich maps every booking to one record, keeping order.
func (e Enricher) Enrich(bookings []models.Booking, l Lookups) []models.ExportRecord {
	now := e.now()
	out := make([]models.ExportRecord, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, enrichBooking(b, l, now))
	}
	return out
}

// EnrichOne enriches a single booking.
func (e Enricher) EnrichOne(b models.Booking, l Lookups) models.ExportRecord {
	return enrichBooking(b, l, e.now())
}

func enrichBooking(b models.Booking, l Lookups, now time.Time) models.ExportRecord {
	profile, hasProfile := l.Profiles[b.UserID]
	if b.UserID == "" {
		hasProfile = false
	}
	trek, hasTrek := l.Treks[b.TrekSlug]
	slot, hasSlot := l.Slots[b.SlotID]
	if b.SlotID == "" {
		hasSlot = false
	}
	roster := l.Participants[b.ID]

	rec := models.ExportRecord{
		BookingID:      b.ID,
		UserID:         utils.Safe(b.UserID, notAvailable),
		CustomerEmail:  utils.Safe(utils.FirstNonEmpty(b.CustomerEmail, profile.Email), notAvailable),
		CustomerPhone:  utils.Safe(utils.FirstNonEmpty(b.CustomerPhone, profile.Phone), notAvailable),
		CustomerGender: utils.Safe(b.CustomerGender, notAvailable),
		Status:         utils.Safe(b.Status, notAvailable),
		PaymentStatus:  utils.Safe(b.PaymentStatus, notAvailable),
		BookingDate:    utils.Safe(utils.DateOnly(b.BookingDate), notAvailable),
		CreatedAt:      formatTimestamp(b.CreatedAt),
		UpdatedAt:      formatTimestamp(b.UpdatedAt),
		BaseAmount:     b.BaseAmount,
		GSTAmount:      b.GSTAmount,
		TotalAmount:    b.TotalAmount,
		FitnessConsent: b.FitnessConsent,
	}

	// customer
	name := ""
	if hasProfile {
		name = profile.FullName
	}
	rec.CustomerName = utils.Safe(utils.FirstNonEmpty(name, b.CustomerName), notAvailable)

	// age
	switch {
	case b.CustomerAge != nil && *b.CustomerAge > 0:
		rec.CustomerAge = *b.CustomerAge
	case b.CustomerDOB != "":
		rec.CustomerAge = AgeFrom(b.CustomerDOB, now)
	}

	// trek
	rec.TrekSlug = utils.Safe(b.TrekSlug, notAvailable)
	rec.TrekName = utils.Safe(utils.TitleFromSlug(b.TrekSlug), notAvailable)
	rec.TrekRegion, rec.TrekDifficulty, rec.TrekDuration = notAvailable, notAvailable, notAvailable
	if hasTrek {
		rec.TrekName = utils.Safe(trek.Name, rec.TrekName)
		rec.TrekRegion = utils.Safe(trek.Region, notAvailable)
		rec.TrekDifficulty = utils.Safe(trek.Difficulty, notAvailable)
		rec.TrekDuration = utils.Safe(trek.Duration, notAvailable)
	}

	// group and money
	rec.Participants = b.Participants
	if rec.Participants <= 0 && len(roster) > 0 {
		rec.Participants = len(roster)
	}
	rec.ParticipantNames = make([]string, 0, len(roster))
	for _, p := range roster {
		rec.ParticipantNames = append(rec.ParticipantNames, p.FullName)
	}
	rec.GroupSize = GroupSizeFor(rec.Participants)
	rec.AmountPerPerson = AmountPerPerson(b.TotalAmount, rec.Participants)

	// slot
	rec.SlotID = utils.Safe(b.SlotID, notAvailable)
	rec.SlotDate = notAvailable
	rec.SlotUtilization = notAvailable
	if hasSlot {
		rec.SlotDate = utils.Safe(utils.DateOnly(slot.Date), notAvailable)
		rec.SlotCapacity = slot.Capacity
		rec.SlotBooked = slot.Booked
		rec.SlotAvailable = slot.Available()
		rec.SlotUtilization = utilization(slot)
	}

	// season
	rec.SeasonType = seasonFor(b, slot, hasSlot)

	// health and risk
	rec.ExperienceLevel = ClassifyExperience(b.TrekkingExperience)
	rec.MedicalConditions = normalizeHealth(b.MedicalConditions)
	rec.Medications = normalizeHealth(b.Medications)
	rec.RecentIllness = normalizeHealth(b.RecentIllness)
	rec.RiskAssessment = AssessRisk(RiskInput{
		MedicalConditions: b.MedicalConditions,
		Age:               rec.CustomerAge,
		ExperienceLevel:   rec.ExperienceLevel,
	})
	rec.DietaryRestrictions = toBeCollected
	rec.Allergies = toBeCollected

	// placeholders for fields upstream does not collect yet
	rec.EmergencyContactName = utils.Safe(b.EmergencyContactName, notAvailable)
	rec.EmergencyContactPhone = utils.Safe(b.EmergencyContactPhone, notAvailable)
	rec.EmergencyContactRelation = toBeCollected
	rec.PickupLocation = utils.Safe(b.PickupLocation, notAvailable)
	rec.NeedsTransportation = b.NeedsTransportation
	rec.GearRental = b.GearRental
	rec.PorterServices = b.PorterServices
	rec.SpecialRequirements = utils.Safe(b.SpecialRequirements, noneText)
	rec.AccommodationPreference = standardLodging
	rec.AdminNotes = utils.Safe(b.AdminNotes, noneText)
	rec.BookingSource = defaultSource

	return rec
}

func utilization(s models.Slot) string {
	if s.Capacity <= 0 {
		return notAvailable
	}
	pct := math.Round(float64(s.Booked) / float64(s.Capacity) * 100)
	return fmt.Sprintf("%d%%", int(pct))
}

// seasonFor prefers the slot date, then the booking date, then creation time.
func seasonFor(b models.Booking, slot models.Slot, hasSlot bool) string {
	if hasSlot && strings.TrimSpace(slot.Date) != "" {
		return SeasonOf(slot.Date)
	}
	if strings.TrimSpace(b.BookingDate) != "" {
		return SeasonOf(b.BookingDate)
	}
	if !b.CreatedAt.IsZero() {
		return SeasonForMonth(b.CreatedAt.Month())
	}
	return SeasonOf("")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.UTC().Format(time.RFC3339)
}
