package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intdb "trekhub/internal/db"
	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
)

const bookingColumns = `
	id, user_id, trek_slug, slot_id,
	customer_name, customer_email, customer_phone, customer_age, customer_dob, customer_gender,
	participants, base_amount, gst_amount, total_amount,
	status, payment_status,
	medical_conditions, medications, recent_illness, fitness_consent,
	emergency_contact_name, emergency_contact_phone, trekking_experience,
	pickup_location, special_requirements, needs_transportation, gear_rental, porter_services,
	admin_notes, booking_date, created_at, updated_at`

type BookingRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// ListBookings returns bookings matching f, newest first.
func (r BookingRepository) ListBookings(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	db, dialect := handle(r.DB, r.Dialect)
	if db == nil {
		return nil, errors.New("database not connected")
	}

	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.Status); s != "" && !strings.EqualFold(s, "all") {
		where = append(where, "status = ?")
		args = append(args, s)
	}
	if f.From != nil {
		where = append(where, "created_at >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		where = append(where, "created_at < ?")
		args = append(args, *f.To)
	}
	if s := strings.TrimSpace(f.TrekSlug); s != "" {
		where = append(where, "trek_slug = ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.SpecificUser); s != "" {
		where = append(where, "(customer_email = ? OR user_id = ?)")
		args = append(args, s, s)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY created_at DESC, id DESC`,
		bookingColumns, strings.Join(where, " AND "))

	rows, err := db.QueryContext(ctx, dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID fetches a single booking.
func (r BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "booking id is required"}
	}
	db, dialect := handle(r.DB, r.Dialect)
	if db == nil {
		return models.Booking{}, errors.New("database not connected")
	}

	row := db.QueryRowContext(ctx, dialect.Rebind(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`), id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (models.Booking, error) {
	var (
		b                                                   models.Booking
		userID, trekSlug, slotID                            sql.NullString
		name, email, phone, dob, gender                     sql.NullString
		age, participants                                   sql.NullInt64
		base, gst, total                                    sql.NullFloat64
		status, payStatus                                   sql.NullString
		medical, meds, illness                              sql.NullString
		consent, transport, gear, porter                    sql.NullBool
		emName, emPhone, experience, pickup, special, notes sql.NullString
		bookingDate                                         sql.NullString
		createdAt, updatedAt                                sql.NullTime
	)
	if err := s.Scan(
		&b.ID, &userID, &trekSlug, &slotID,
		&name, &email, &phone, &age, &dob, &gender,
		&participants, &base, &gst, &total,
		&status, &payStatus,
		&medical, &meds, &illness, &consent,
		&emName, &emPhone, &experience,
		&pickup, &special, &transport, &gear, &porter,
		&notes, &bookingDate, &createdAt, &updatedAt,
	); err != nil {
		return models.Booking{}, err
	}

	b.UserID = userID.String
	b.TrekSlug = trekSlug.String
	b.SlotID = slotID.String
	b.CustomerName = name.String
	b.CustomerEmail = email.String
	b.CustomerPhone = phone.String
	b.CustomerAge = nullIntPtr(age)
	b.CustomerDOB = dob.String
	b.CustomerGender = gender.String
	b.Participants = int(participants.Int64)
	b.BaseAmount = base.Float64
	b.GSTAmount = gst.Float64
	b.TotalAmount = total.Float64
	b.Status = status.String
	b.PaymentStatus = payStatus.String
	b.MedicalConditions = medical.String
	b.Medications = meds.String
	b.RecentIllness = illness.String
	b.FitnessConsent = consent.Bool
	b.EmergencyContactName = emName.String
	b.EmergencyContactPhone = emPhone.String
	b.TrekkingExperience = experience.String
	b.PickupLocation = pickup.String
	b.SpecialRequirements = special.String
	b.NeedsTransportation = transport.Bool
	b.GearRental = gear.Bool
	b.PorterServices = porter.Bool
	b.AdminNotes = notes.String
	b.BookingDate = bookingDate.String
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return b, nil
}
