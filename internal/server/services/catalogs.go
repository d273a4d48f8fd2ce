package services

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/content"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
)

// Catalogs groups the five collections served under /api.
type Catalogs struct {
	Blogs           *Catalog[models.Blog, *models.Blog]
	Projects        *Catalog[models.Project, *models.Project]
	Education       *Catalog[models.Education, *models.Education]
	Experience      *Catalog[models.Experience, *models.Experience]
	Extracurricular *Catalog[models.Extracurricular, *models.Extracurricular]
}

// NewCatalogs wires every collection to rm. db may be nil for the
// in-memory manager. ttl is the public listing revalidation window.
func NewCatalogs(db *sql.DB, rm repomanager.RepositoryManager, ttl time.Duration) *Catalogs {
	return &Catalogs{
		Blogs: NewCatalog[models.Blog]("blogs", db,
			func(tx dbx.DBTX) content.Repository[models.Blog] { return rm.Blogs(tx) }, ttl),
		Projects: NewCatalog[models.Project]("projects", db,
			func(tx dbx.DBTX) content.Repository[models.Project] { return rm.Projects(tx) }, ttl),
		Education: NewCatalog[models.Education]("education", db,
			func(tx dbx.DBTX) content.Repository[models.Education] { return rm.Education(tx) }, ttl),
		Experience: NewCatalog[models.Experience]("experience", db,
			func(tx dbx.DBTX) content.Repository[models.Experience] { return rm.Experience(tx) }, ttl),
		Extracurricular: NewCatalog[models.Extracurricular]("extracurricular", db,
			func(tx dbx.DBTX) content.Repository[models.Extracurricular] { return rm.Extracurricular(tx) }, ttl),
	}
}
