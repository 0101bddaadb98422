package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "trekhub/internal/db"
	"trekhub/internal/domain/models"
)

type TrekRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// BySlugs loads the treks referenced by slugs. Unknown slugs are simply
// absent from the map.
func (r TrekRepository) BySlugs(ctx context.Context, slugs []string) (map[string]models.Trek, error) {
	out := map[string]models.Trek{}
	slugs = uniqueNonEmpty(slugs)
	if len(slugs) == 0 {
		return out, nil
	}
	db, dialect := handle(r.DB, r.Dialect)
	if db == nil {
		return nil, errors.New("database not connected")
	}

	query := `SELECT slug, name, region, difficulty, duration FROM treks WHERE slug IN (` + intdb.Placeholders(len(slugs)) + `)`
	rows, err := db.QueryContext(ctx, dialect.Rebind(query), toArgs(slugs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t                                  models.Trek
			name, region, difficulty, duration sql.NullString
		)
		if err := rows.Scan(&t.Slug, &name, &region, &difficulty, &duration); err != nil {
			return out, err
		}
		t.Name = name.String
		t.Region = region.String
		t.Difficulty = difficulty.String
		t.Duration = duration.String
		out[t.Slug] = t
	}
	return out, rows.Err()
}

type SlotRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// ByIDs loads trek slots by id.
func (r SlotRepository) ByIDs(ctx context.Context, ids []string) (map[string]models.Slot, error) {
	out := map[string]models.Slot{}
	ids = uniqueNonEmpty(ids)
	if len(ids) == 0 {
		return out, nil
	}
	db, dialect := handle(r.DB, r.Dialect)
	if db == nil {
		return nil, errors.New("database not connected")
	}

	query := `SELECT id, trek_slug, date, capacity, booked FROM trek_slots WHERE id IN (` + intdb.Placeholders(len(ids)) + `)`
	rows, err := db.QueryContext(ctx, dialect.Rebind(query), toArgs(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s                models.Slot
			trekSlug, date   sql.NullString
			capacity, booked sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &trekSlug, &date, &capacity, &booked); err != nil {
			return out, err
		}
		s.TrekSlug = trekSlug.String
		s.Date = date.String
		s.Capacity = int(capacity.Int64)
		s.Booked = int(booked.Int64)
		out[s.ID] = s
	}
	return out, rows.Err()
}
