// Package repository contains data access logic separated from HTTP handlers.
// Each repository wraps single-row statements against one MySQL table and
// reports a missing row as a nil result rather than an error, so callers
// decide how absence is surfaced.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

// ClubRepo encapsulates all database queries related to clubs.  It
// depends on a sql.DB connection which should be configured elsewhere.
type ClubRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewClubRepo constructs a ClubRepo with the provided DB handle.
func NewClubRepo(db *sql.DB) *ClubRepo {
	return &ClubRepo{db: db}
}

const clubColumns = "id, name, place, club_id"

// GetByID fetches a club by its id.  It returns nil, nil if no row exists.
func (r *ClubRepo) GetByID(ctx context.Context, id uint64) (*model.Club, error) {
	const q = "SELECT " + clubColumns + " FROM club WHERE id = ?"
	var c model.Club
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Place, &c.ClubID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// GetAll returns every club ordered by name, then id.
func (r *ClubRepo) GetAll(ctx context.Context) ([]model.Club, error) {
	const q = "SELECT " + clubColumns + " FROM club ORDER BY name ASC, id ASC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Club{}
	for rows.Next() {
		var c model.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Place, &c.ClubID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add inserts a new club and returns the row as stored.  The follow-up
// SELECT means callers see exactly what was persisted, including any
// column defaults applied by the database.
func (r *ClubRepo) Add(ctx context.Context, in model.ClubInput) (*model.Club, error) {
	const q = "INSERT INTO club (name, place, club_id) VALUES (?, ?, ?)"
	c := in.Record(0)
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Place, c.ClubID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces every mutable column of the club.  It returns nil, nil
// when the club does not exist.
func (r *ClubRepo) Update(ctx context.Context, id uint64, in model.ClubInput) (*model.Club, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	const q = "UPDATE club SET name = ?, place = ?, club_id = ? WHERE id = ?"
	c := in.Record(id)
	if _, err := r.db.ExecContext(ctx, q, c.Name, c.Place, c.ClubID, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the club and reports whether a row was removed.
func (r *ClubRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil || existing == nil {
		return false, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM club WHERE id = ?", id); err != nil {
		return false, err
	}
	return true, nil
}
