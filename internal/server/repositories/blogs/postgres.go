// Package blogs persists blog posts.
package blogs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
)

type Repository = content.Repository[models.Blog]

const selectColumns = `SELECT id, title, description, content, tags, read_time, published, date, created_at, updated_at FROM blogs`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanBlog(s dbx.Scanner) (*models.Blog, error) {
	var b models.Blog
	var tags []byte
	if err := s.Scan(&b.ID, &b.Title, &b.Description, &b.Content, &tags, &b.ReadTime,
		&b.Published, &b.Date, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if b.Tags, err = content.DecodeList(tags); err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns posts newest first, optionally only (un)published ones.
func (r *PostgresRepository) List(ctx context.Context, filter models.ListFilter) ([]*models.Blog, error) {
	query := selectColumns
	var args []any
	if filter.Published != nil {
		query += ` WHERE published = $1`
		args = append(args, *filter.Published)
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select blogs: %w", err)
	}
	return dbx.ScanAll(rows, scanBlog)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Blog, error) {
	b, err := scanBlog(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		return nil, content.RowError(err)
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	tags, err := content.EncodeList(b.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO blogs (id, title, description, content, tags, read_time, published, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.ExecContext(ctx, query, b.ID, b.Title, b.Description, b.Content, tags, b.ReadTime,
		b.Published, b.Date, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

// Update replaces the editable fields and keeps created_at.
func (r *PostgresRepository) Update(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	tags, err := content.EncodeList(b.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE blogs SET title = $2, description = $3, content = $4, tags = $5, read_time = $6,
			published = $7, date = $8, updated_at = $9
		WHERE id = $1
		RETURNING created_at
	`
	err = r.db.QueryRowContext(ctx, query, b.ID, b.Title, b.Description, b.Content, tags, b.ReadTime,
		b.Published, b.Date, b.UpdatedAt).Scan(&b.CreatedAt)
	if err != nil {
		return nil, content.RowError(err)
	}
	return b, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return content.ExpectOneRow(r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id))
}
