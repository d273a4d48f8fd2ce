// Package education persists education records.
package education

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
)

type Repository = content.Repository[models.Education]

const selectColumns = `SELECT id, degree, institution, year, sort_order, created_at, updated_at FROM education`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scan(s dbx.Scanner) (*models.Education, error) {
	var e models.Education
	if err := s.Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.Order, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns all rows in display order. Filters do not apply.
func (r *PostgresRepository) List(ctx context.Context, _ models.ListFilter) ([]*models.Education, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select education: %w", err)
	}
	return dbx.ScanAll(rows, scan)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Education, error) {
	e, err := scan(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		return nil, content.RowError(err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Education) (*models.Education, error) {
	query := `
		INSERT INTO education (id, degree, institution, year, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Degree, e.Institution, e.Year, e.Order, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Education) (*models.Education, error) {
	query := `
		UPDATE education SET degree = $2, institution = $3, year = $4, sort_order = $5, updated_at = $6
		WHERE id = $1
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, e.ID, e.Degree, e.Institution, e.Year, e.Order, e.UpdatedAt).Scan(&e.CreatedAt)
	if err != nil {
		return nil, content.RowError(err)
	}
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return content.ExpectOneRow(r.db.ExecContext(ctx, `DELETE FROM education WHERE id = $1`, id))
}
