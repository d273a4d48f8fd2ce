// Package projects persists portfolio projects.
package projects

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
)

type Repository = content.Repository[models.Project]

const selectColumns = `SELECT id, title, description, image, live_link, code_link, year, tech_stack, featured, created_at, updated_at FROM projects`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProject(s dbx.Scanner) (*models.Project, error) {
	var p models.Project
	var stack []byte
	if err := s.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.LiveLink, &p.CodeLink,
		&p.Year, &stack, &p.Featured, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.TechStack, err = content.DecodeList(stack); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns projects by year, newest first, optionally only (non)featured.
func (r *PostgresRepository) List(ctx context.Context, filter models.ListFilter) ([]*models.Project, error) {
	query := selectColumns
	var args []any
	if filter.Featured != nil {
		query += ` WHERE featured = $1`
		args = append(args, *filter.Featured)
	}
	query += ` ORDER BY year DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	return dbx.ScanAll(rows, scanProject)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		return nil, content.RowError(err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	stack, err := content.EncodeList(p.TechStack)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO projects (id, title, description, image, live_link, code_link, year, tech_stack, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.Image, p.LiveLink, p.CodeLink,
		p.Year, stack, p.Featured, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	stack, err := content.EncodeList(p.TechStack)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE projects SET title = $2, description = $3, image = $4, live_link = $5, code_link = $6,
			year = $7, tech_stack = $8, featured = $9, updated_at = $10
		WHERE id = $1
		RETURNING created_at
	`
	err = r.db.QueryRowContext(ctx, query, p.ID, p.Title, p.Description, p.Image, p.LiveLink, p.CodeLink,
		p.Year, stack, p.Featured, p.UpdatedAt).Scan(&p.CreatedAt)
	if err != nil {
		return nil, content.RowError(err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return content.ExpectOneRow(r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id))
}
