package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
	"trekhub/internal/utils"
)

type BookingReader interface {
	ListBookings(ctx context.Context, f models.BookingFilter) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (models.Booking, error)
}

type TrekReader interface {
	BySlugs(ctx context.Context, slugs []string) (map[string]models.Trek, error)
}

type SlotReader interface {
	ByIDs(ctx context.Context, ids []string) (map[string]models.Slot, error)
}

type ProfileReader interface {
	ByUserIDs(ctx context.Context, userIDs []string) (map[string]models.Profile, error)
}

type ParticipantReader interface {
	ByBookingIDs(ctx context.Context, bookingIDs []string) (map[string][]models.Participant, error)
}

// ExportRequest is a validated export call.
type ExportRequest struct {
	Format  domain.ExportFormat
	Cohort  domain.Cohort
	Filter  models.BookingFilter
	Filters map[string]string
}

// ExportService runs the booking export: query, join, cohort filter, render.
type ExportService struct {
	Bookings     BookingReader
	Treks        TrekReader
	Slots        SlotReader
	Profiles     ProfileReader
	Participants ParticipantReader
	Enricher     Enricher
	RequestID    string
}

// Export returns the rendered file. An empty booking set is a NotFoundError;
// store failures are InternalErrors.
func (s ExportService) Export(ctx context.Context, req ExportRequest) (ExportFile, error) {
	format, err := domain.ParseExportFormat(string(req.Format))
	if err != nil {
		return ExportFile{}, err
	}
	cohort, err := domain.ParseCohort(string(req.Cohort))
	if err != nil {
		return ExportFile{}, err
	}

	bookings, err := s.Bookings.ListBookings(ctx, req.Filter)
	if err != nil {
		return ExportFile{}, domain.InternalError{Msg: "failed to fetch bookings", Err: err}
	}
	if len(bookings) == 0 {
		return ExportFile{}, domain.NotFoundError{Resource: "bookings", Msg: "no bookings found for the selected filters"}
	}

	lookups, err := loadLookups(ctx, lookupSources{s.Treks, s.Slots, s.Profiles, s.Participants}, bookings)
	if err != nil {
		return ExportFile{}, domain.InternalError{Msg: "failed to fetch related records", Err: err}
	}

	records := s.Enricher.Enrich(bookings, lookups)
	records = FilterCohort(records, cohort)
	summary := Summarize(records)

	file, err := Render(format, records, summary, ExportMeta{
		ExportedAt:   s.Enricher.now(),
		TotalQueried: len(bookings),
		Format:       format,
		Cohort:       cohort,
		Filters:      req.Filters,
	})
	if err != nil {
		return ExportFile{}, err
	}

	utils.LogEvent(s.RequestID, "export", "render",
		fmt.Sprintf("format=%s cohort=%s queried=%d exported=%d bytes=%d", format, cohort, len(bookings), file.Records, len(file.Body)))
	return file, nil
}

// loadLookups fetches the four related sets concurrently. Each goroutine
// owns its own result; the first failure cancels the rest.
func loadLookups(ctx context.Context, src lookupSources, bookings []models.Booking) (Lookups, error) {
	slugs := make([]string, 0, len(bookings))
	slotIDs := make([]string, 0, len(bookings))
	userIDs := make([]string, 0, len(bookings))
	bookingIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		slugs = append(slugs, b.TrekSlug)
		slotIDs = append(slotIDs, b.SlotID)
		userIDs = append(userIDs, b.UserID)
		bookingIDs = append(bookingIDs, b.ID)
	}

	var l Lookups
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		l.Treks, err = src.treks.BySlugs(gctx, slugs)
		return err
	})
	g.Go(func() (err error) {
		l.Slots, err = src.slots.ByIDs(gctx, slotIDs)
		return err
	})
	g.Go(func() (err error) {
		l.Profiles, err = src.profiles.ByUserIDs(gctx, userIDs)
		return err
	})
	g.Go(func() (err error) {
		l.Participants, err = src.participants.ByBookingIDs(gctx, bookingIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return Lookups{}, err
	}
	return l, nil
}

type lookupSources struct {
	treks        TrekReader
	slots        SlotReader
	profiles     ProfileReader
	participants ParticipantReader
}
