package models

import "trekhub/internal/domain"

// ExportRecord is the flattened, enriched per-booking row shared by every
// export format. It is built per request and never stored.
type ExportRecord struct {
	BookingID      string `json:"bookingId"`
	UserID         string `json:"userId"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	CustomerAge    int    `json:"customerAge"`
	CustomerGender string `json:"customerGender"`

	TrekSlug       string `json:"trekSlug"`
	TrekName       string `json:"trekName"`
	TrekRegion     string `json:"trekRegion"`
	TrekDifficulty string `json:"trekDifficulty"`
	TrekDuration   string `json:"trekDuration"`

	BookingDate   string `json:"bookingDate"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	SeasonType    string `json:"seasonType"`

	Participants     int      `json:"participants"`
	ParticipantNames []string `json:"participantNames"`
	GroupSize        string   `json:"groupSize"`

	BaseAmount      float64 `json:"baseAmount"`
	GSTAmount       float64 `json:"gstAmount"`
	TotalAmount     float64 `json:"totalAmount"`
	AmountPerPerson float64 `json:"amountPerPerson"`

	ExperienceLevel     string           `json:"experienceLevel"`
	MedicalConditions   string           `json:"medicalConditions"`
	Medications         string           `json:"medications"`
	RecentIllness       string           `json:"recentIllness"`
	FitnessConsent      bool             `json:"fitnessConsent"`
	RiskAssessment      domain.RiskLevel `json:"riskAssessment"`
	DietaryRestrictions string           `json:"dietaryRestrictions"`
	Allergies           string           `json:"allergies"`

	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactPhone    string `json:"emergencyContactPhone"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`

	PickupLocation          string `json:"pickupLocation"`
	NeedsTransportation     bool   `json:"needsTransportation"`
	GearRental              bool   `json:"gearRental"`
	PorterServices          bool   `json:"porterServices"`
	SpecialRequirements     string `json:"specialRequirements"`
	AccommodationPreference string `json:"accommodationPreference"`

	SlotID          string `json:"slotId"`
	SlotDate        string `json:"slotDate"`
	SlotCapacity    int    `json:"slotCapacity"`
	SlotBooked      int    `json:"slotBooked"`
	SlotAvailable   int    `json:"slotAvailable"`
	SlotUtilization string `json:"slotUtilization"`

	AdminNotes    string `json:"adminNotes"`
	BookingSource string `json:"bookingSource"`
}
