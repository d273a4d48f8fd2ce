package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/cache"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/memstore"
)

// Catalog implements CRUD for one content collection. Listings are served
// from a short-lived cache that every successful write purges.
type Catalog[T any, P memstore.Ptr[T]] struct {
	name  string
	db    *sql.DB
	repo  func(dbx.DBTX) content.Repository[T]
	cache *cache.Listings[T]
	now   func() time.Time
	newID func() string
}

func NewCatalog[T any, P memstore.Ptr[T]](name string, db *sql.DB, repo func(dbx.DBTX) content.Repository[T], ttl time.Duration) *Catalog[T, P] {
	return &Catalog[T, P]{
		name:  name,
		db:    db,
		repo:  repo,
		cache: cache.NewListings[T](ttl),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Name is the collection name, e.g. "blogs".
func (c *Catalog[T, P]) Name() string { return c.name }

func (c *Catalog[T, P]) List(ctx context.Context, filter models.ListFilter) ([]*T, error) {
	if items, ok := c.cache.Get(filter); ok {
		return items, nil
	}
	gen := c.cache.Generation()
	items, err := c.repo(c.db).List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	c.cache.Add(filter, items, gen)
	return items, nil
}

// Get returns common.ErrNotFound for unknown or malformed ids.
func (c *Catalog[T, P]) Get(ctx context.Context, id string) (*T, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}
	return c.repo(c.db).Get(ctx, id)
}

// Create validates item, assigns id and timestamps, and stores it.
func (c *Catalog[T, P]) Create(ctx context.Context, item *T) (*T, error) {
	p := P(item)
	now := c.now()
	c.prepare(item, now)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.SetID(c.newID())
	p.Stamp(now, now)

	created, err := c.repo(c.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.name, err)
	}
	c.cache.Purge()
	return created, nil
}

// Update replaces every editable field of the item with the given id.
func (c *Catalog[T, P]) Update(ctx context.Context, id string, item *T) (*T, error) {
	if !validID(id) {
		return nil, common.ErrNotFound
	}
	p := P(item)
	now := c.now()
	c.prepare(item, now)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.SetID(id)
	p.Stamp(time.Time{}, now)

	updated, err := c.repo(c.db).Update(ctx, item)
	if err != nil {
		return nil, err
	}
	c.cache.Purge()
	return updated, nil
}

func (c *Catalog[T, P]) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return common.ErrNotFound
	}
	if err := c.repo(c.db).Delete(ctx, id); err != nil {
		return err
	}
	c.cache.Purge()
	return nil
}

func (c *Catalog[T, P]) prepare(item *T, now time.Time) {
	if d, ok := any(item).(models.Defaulter); ok {
		d.SetDefaults(now)
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
