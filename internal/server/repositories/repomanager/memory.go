package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/education"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/experience"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/extracurricular"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/memstore"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/projects"
)

// MemoryRepositoryManager keeps every collection in process memory. The
// DBTX argument is ignored; all callers share the same stores.
type MemoryRepositoryManager struct {
	blogs           blogs.Repository
	projects        projects.Repository
	education       education.Repository
	experience      experience.Repository
	extracurricular extracurricular.Repository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		blogs:           memstore.NewBlogs(),
		projects:        memstore.NewProjects(),
		education:       memstore.NewEducation(),
		experience:      memstore.NewExperience(),
		extracurricular: memstore.NewExtracurricular(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Blogs(dbx.DBTX) blogs.Repository       { return m.blogs }
func (m *MemoryRepositoryManager) Projects(dbx.DBTX) projects.Repository { return m.projects }
func (m *MemoryRepositoryManager) Education(dbx.DBTX) education.Repository {
	return m.education
}
func (m *MemoryRepositoryManager) Experience(dbx.DBTX) experience.Repository {
	return m.experience
}
func (m *MemoryRepositoryManager) Extracurricular(dbx.DBTX) extracurricular.Repository {
	return m.extracurricular
}
