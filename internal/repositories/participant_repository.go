package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intdb "trekhub/internal/db"
	"trekhub/internal/domain/models"
)

const participantsTable = "booking_participants"

type ParticipantRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// ByBookingIDs groups participant rosters by booking id, in insertion order.
func (r ParticipantRepository) ByBookingIDs(ctx context.Context, bookingIDs []string) (map[string][]models.Participant, error) {
	out := map[string][]models.Participant{}
	bookingIDs = uniqueNonEmpty(bookingIDs)
	if len(bookingIDs) == 0 {
		return out, nil
	}
	db, dialect := handle(r.DB, r.Dialect)
	if db == nil {
		return nil, errors.New("database not connected")
	}
	exists, err := intdb.HasTable(ctx, db, dialect, participantsTable)
	if err != nil {
		return nil, fmt.Errorf("probe %s table: %w", participantsTable, err)
	}
	if !exists {
		return out, nil
	}

	query := `SELECT booking_id, full_name FROM ` + participantsTable + ` WHERE booking_id IN (` + intdb.Placeholders(len(bookingIDs)) + `) ORDER BY booking_id, id`
	rows, err := db.QueryContext(ctx, dialect.Rebind(query), toArgs(bookingIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p        models.Participant
			fullName sql.NullString
		)
		if err := rows.Scan(&p.BookingID, &fullName); err != nil {
			return out, err
		}
		p.FullName = strings.TrimSpace(fullName.String)
		if p.FullName == "" {
			continue
		}
		out[p.BookingID] = append(out[p.BookingID], p)
	}
	return out, rows.Err()
}
