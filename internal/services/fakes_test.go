package services

import (
	"context"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
)

type fakeBookings struct {
	rows     []models.Booking
	err      error
	calls    int
	lastSeen models.BookingFilter
}

func (f *fakeBookings) ListBookings(_ context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	f.calls++
	f.lastSeen = filter
	return f.rows, f.err
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (models.Booking, error) {
	f.calls++
	if f.err != nil {
		return models.Booking{}, f.err
	}
	for _, b := range f.rows {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking", Msg: "booking not found"}
}

type fakeTreks struct {
	rows map[string]models.Trek
	err  error
	keys []string
}

func (f *fakeTreks) BySlugs(_ context.Context, slugs []string) (map[string]models.Trek, error) {
	f.keys = slugs
	return f.rows, f.err
}

type fakeSlots struct {
	rows map[string]models.Slot
	err  error
	keys []string
}

func (f *fakeSlots) ByIDs(_ context.Context, ids []string) (map[string]models.Slot, error) {
	f.keys = ids
	return f.rows, f.err
}

type fakeProfiles struct {
	rows map[string]models.Profile
	err  error
	keys []string
}

func (f *fakeProfiles) ByUserIDs(_ context.Context, ids []string) (map[string]models.Profile, error) {
	f.keys = ids
	return f.rows, f.err
}

type fakeParticipants struct {
	rows map[string][]models.Participant
	err  error
	keys []string
}

func (f *fakeParticipants) ByBookingIDs(_ context.Context, ids []string) (map[string][]models.Participant, error) {
	f.keys = ids
	return f.rows, f.err
}

type fakeStore struct {
	bookings     *fakeBookings
	treks        *fakeTreks
	slots        *fakeSlots
	profiles     *fakeProfiles
	participants *fakeParticipants
}

func newFakeStore(bookings ...models.Booking) fakeStore {
	return fakeStore{
		bookings:     &fakeBookings{rows: bookings},
		treks:        &fakeTreks{},
		slots:        &fakeSlots{},
		profiles:     &fakeProfiles{},
		participants: &fakeParticipants{},
	}
}

func (f fakeStore) exportService() ExportService {
	return ExportService{
		Bookings:     f.bookings,
		Treks:        f.treks,
		Slots:        f.slots,
		Profiles:     f.profiles,
		Participants: f.participants,
		Enricher:     testEnricher(),
		RequestID:    "test-req",
	}
}

func (f fakeStore) trekSheetService() TrekSheetService {
	return TrekSheetService{
		Bookings:     f.bookings,
		Treks:        f.treks,
		Slots:        f.slots,
		Profiles:     f.profiles,
		Participants: f.participants,
		Enricher:     testEnricher(),
		RequestID:    "test-req",
	}
}
