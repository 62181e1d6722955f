package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

// StadiumRepo encapsulates all database queries related to stadiums.
type StadiumRepo struct {
	db *sql.DB
}

// NewStadiumRepo constructs a StadiumRepo with the provided DB handle.
func NewStadiumRepo(db *sql.DB) *StadiumRepo {
	return &StadiumRepo{db: db}
}

const stadiumColumns = "id, club_name, stadiums_name, stadiums_id, amount_of_seats"

type scanner interface {
	Scan(dest ...any) error
}

func scanStadium(s scanner) (model.Stadium, error) {
	var st model.Stadium
	err := s.Scan(&st.ID, &st.ClubName, &st.StadiumsName, &st.StadiumsID, &st.AmountOfSeats)
	return st, err
}

// GetByID fetches a stadium by its id.  It returns nil, nil if no row exists.
func (r *StadiumRepo) GetByID(ctx context.Context, id uint64) (*model.Stadium, error) {
	const q = "SELECT " + stadiumColumns + " FROM stadium WHERE id = ?"
	st, err := scanStadium(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

// GetAll returns every stadium ordered by stadium name, then id.
func (r *StadiumRepo) GetAll(ctx context.Context) ([]model.Stadium, error) {
	const q = "SELECT " + stadiumColumns + " FROM stadium ORDER BY stadiums_name ASC, id ASC"
	return r.list(ctx, q)
}

// GetByClub returns the stadiums registered under the given club name.
func (r *StadiumRepo) GetByClub(ctx context.Context, clubName string) ([]model.Stadium, error) {
	const q = "SELECT " + stadiumColumns + " FROM stadium WHERE club_name = ? ORDER BY stadiums_name ASC, id ASC"
	return r.list(ctx, q, clubName)
}

func (r *StadiumRepo) list(ctx context.Context, q string, args ...any) ([]model.Stadium, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Stadium{}
	for rows.Next() {
		st, err := scanStadium(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add inserts a new stadium and re-reads it by the generated id.
func (r *StadiumRepo) Add(ctx context.Context, in model.StadiumInput) (*model.Stadium, error) {
	const q = `INSERT INTO stadium (club_name, stadiums_name, stadiums_id, amount_of_seats)
	           VALUES (?, ?, ?, ?)`
	st := in.Record(0)
	res, err := r.db.ExecContext(ctx, q, st.ClubName, st.StadiumsName, st.StadiumsID, st.AmountOfSeats)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces every mutable column of the stadium.  It returns nil, nil
// when the stadium does not exist.
func (r *StadiumRepo) Update(ctx context.Context, id uint64, in model.StadiumInput) (*model.Stadium, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	const q = `UPDATE stadium
	           SET club_name = ?, stadiums_name = ?, stadiums_id = ?, amount_of_seats = ?
	           WHERE id = ?`
	st := in.Record(id)
	if _, err := r.db.ExecContext(ctx, q, st.ClubName, st.StadiumsName, st.StadiumsID, st.AmountOfSeats, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the stadium and reports whether a row was removed.
func (r *StadiumRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil || existing == nil {
		return false, err
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM stadium WHERE id = ?", id); err != nil {
		return false, err
	}
	return true, nil
}
