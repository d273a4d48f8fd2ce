package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/education"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/experience"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/extracurricular"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/projects"
)

// RepositoryManager vends repositories bound to a DBTX so services can run
// them either directly on the pool or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Blogs(db dbx.DBTX) blogs.Repository
	Projects(db dbx.DBTX) projects.Repository
	Education(db dbx.DBTX) education.Repository
	Experience(db dbx.DBTX) experience.Repository
	Extracurricular(db dbx.DBTX) extracurricular.Repository
}
