package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "trekhub/internal/db"
	"trekhub/internal/domain/models"
)

const profilesTable = "user_profiles"

type ProfileRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// ByUserIDs loads customer profiles. Deployments without a profiles table
// get an empty map.
func (r ProfileRepository) ByUserIDs(ctx context.Context, userIDs []string) (map[string]models.Profile, error) {
	out := map[string]models.Profile{}
	userIDs = uniqueNonEmpty(userIDs)
	if len(userIDs) == 0 {
		return out, nil
	}
	db, dialect := handle(r.DB, r.Dialect)
	if db == nil {
		return nil, errors.New("database not connected")
	}
	exists, err := intdb.HasTable(ctx, db, dialect, profilesTable)
	if err != nil {
		return nil, fmt.Errorf("probe %s table: %w", profilesTable, err)
	}
	if !exists {
		return out, nil
	}

	query := `SELECT user_id, full_name, email, phone FROM ` + profilesTable + ` WHERE user_id IN (` + intdb.Placeholders(len(userIDs)) + `)`
	rows, err := db.QueryContext(ctx, dialect.Rebind(query), toArgs(userIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p                      models.Profile
			fullName, email, phone sql.NullString
		)
		if err := rows.Scan(&p.UserID, &fullName, &email, &phone); err != nil {
			return out, err
		}
		p.FullName = fullName.String
		p.Email = email.String
		p.Phone = phone.String
		out[p.UserID] = p
	}
	return out, rows.Err()
}
