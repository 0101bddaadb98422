package models

import "time"

// Booking is a customer's reservation row as stored in bookings.
// Empty strings mean "not recorded".
type Booking struct {
	ID                    string
	UserID                string
	TrekSlug              string
	SlotID                string
	CustomerName          string
	CustomerEmail         string
	CustomerPhone         string
	CustomerAge           *int
	CustomerDOB           string
	CustomerGender        string
	Participants          int
	BaseAmount            float64
	GSTAmount             float64
	TotalAmount           float64
	Status                string
	PaymentStatus         string
	MedicalConditions     string
	Medications           string
	RecentIllness         string
	FitnessConsent        bool
	EmergencyContactName  string
	EmergencyContactPhone string
	TrekkingExperience    string
	PickupLocation        string
	SpecialRequirements   string
	NeedsTransportation   bool
	GearRental            bool
	PorterServices        bool
	AdminNotes            string
	BookingDate           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Participant is one named trekker on a booking.
type Participant struct {
	BookingID string
	FullName  string
}

// Profile is the account-level view of a customer.
type Profile struct {
	UserID   string
	FullName string
	Email    string
	Phone    string
}

// BookingFilter narrows the bookings read for an export. Zero values
// disable the corresponding clause; To is exclusive.
type BookingFilter struct {
	Status       string
	From         *time.Time
	To           *time.Time
	TrekSlug     string
	SpecificUser string
}
