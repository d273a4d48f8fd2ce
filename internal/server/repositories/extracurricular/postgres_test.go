package extracurricular

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "role", "organization", "year", "description", "sort_order", "created_at", "updated_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestList_DisplayOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM extracurricular ORDER BY sort_order ASC, created_at ASC$`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("a", "Lead", "Club", "2019", "Ran meetups", 0, now, now).AddRow("b", "Lead", "Club", "2019", "Ran meetups", 1, now, now))

	got, err := repo.List(context.Background(), models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, 1, got[1].Order)
}

func TestList_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM extracurricular`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), models.ListFilter{})
	require.EqualError(t, err, "failed to select extracurricular: db down")
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM extracurricular WHERE id = \$1`).WithArgs("x").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "x")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateUpdateDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	e := &models.Extracurricular{Base: models.Base{ID: "a", CreatedAt: now, UpdatedAt: now}, Role: "Lead", Organization: "Club", Year: "2019", Description: "Ran meetups", Order: 2}

	mock.ExpectExec(`INSERT INTO extracurricular`).
		WithArgs("a", "Lead", "Club", "2019", "Ran meetups", 2, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE extracurricular SET .+ RETURNING created_at`).
		WithArgs("a", "Lead", "Club", "2019", "Ran meetups", 2, now).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectExec(`DELETE FROM extracurricular WHERE id = \$1`).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM extracurricular WHERE id = \$1`).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Create(context.Background(), e)
	require.NoError(t, err)
	_, err = repo.Update(context.Background(), e)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(context.Background(), "a"))
	require.ErrorIs(t, repo.Delete(context.Background(), "a"), common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE extracurricular`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Extracurricular{Base: models.Base{ID: "gone"}})
	require.ErrorIs(t, err, common.ErrNotFound)
}
