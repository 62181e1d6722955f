package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/club-stadium-api/internal/model"
)

var clubCols = []string{"id", "name", "place", "club_id"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

const selectClubByID = "SELECT id, name, place, club_id FROM club WHERE id = ?"

func TestClubGetByIDMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows(clubCols))

	got, err := NewClubRepo(db).GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClubGetByIDError(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).WillReturnError(boom)

	_, err := NewClubRepo(db).GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestClubGetAllOrdersByName(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM club ORDER BY name ASC, id ASC")).
		WillReturnRows(sqlmock.NewRows(clubCols).
			AddRow(2, "Alpha", 1, 20).
			AddRow(1, "Beta", 2, 10))

	got, err := NewClubRepo(db).GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Club{
		{ID: 2, Name: "Alpha", Place: 1, ClubID: 20},
		{ID: 1, Name: "Beta", Place: 2, ClubID: 10},
	}, got)
}

func TestClubGetAllEmptyIsNotNil(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM club").WillReturnRows(sqlmock.NewRows(clubCols))

	got, err := NewClubRepo(db).GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClubAddRereadsStoredRow(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO club (name, place, club_id) VALUES (?, ?, ?)")).
		WithArgs("FC Alpha", 1, 10).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows(clubCols).AddRow(42, "FC Alpha", 1, 10))

	got, err := NewClubRepo(db).Add(context.Background(), model.NewClubInput("FC Alpha", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, &model.Club{ID: 42, Name: "FC Alpha", Place: 1, ClubID: 10}, got)
}

func TestClubUpdateMissingSkipsWrite(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(clubCols))

	got, err := NewClubRepo(db).Update(context.Background(), 5, model.NewClubInput("X", 1, 1))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClubUpdate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(clubCols).AddRow(5, "Old", 9, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE club SET name = ?, place = ?, club_id = ? WHERE id = ?")).
		WithArgs("New", 3, 7, uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(clubCols).AddRow(5, "New", 3, 7))

	got, err := NewClubRepo(db).Update(context.Background(), 5, model.NewClubInput("New", 3, 7))
	require.NoError(t, err)
	assert.Equal(t, &model.Club{ID: 5, Name: "New", Place: 3, ClubID: 7}, got)
}

func TestClubDelete(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WillReturnRows(sqlmock.NewRows(clubCols).AddRow(5, "Old", 9, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM club WHERE id = ?")).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := NewClubRepo(db).Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClubDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectClubByID)).
		WillReturnRows(sqlmock.NewRows(clubCols))

	ok, err := NewClubRepo(db).Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)
}
