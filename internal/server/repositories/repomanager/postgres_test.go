package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/education"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/experience"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/extracurricular"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/projects"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestManagers_SatisfyInterface(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager()
	var _ RepositoryManager = NewMemoryRepositoryManager()
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()

	if _, ok := m.Blogs(db).(*blogs.PostgresRepository); !ok {
		t.Fatal("Blogs() is not a postgres repository")
	}
	if _, ok := m.Projects(db).(*projects.PostgresRepository); !ok {
		t.Fatal("Projects() is not a postgres repository")
	}
	if _, ok := m.Education(db).(*education.PostgresRepository); !ok {
		t.Fatal("Education() is not a postgres repository")
	}
	if _, ok := m.Experience(db).(*experience.PostgresRepository); !ok {
		t.Fatal("Experience() is not a postgres repository")
	}
	if _, ok := m.Extracurricular(db).(*extracurricular.PostgresRepository); !ok {
		t.Fatal("Extracurricular() is not a postgres repository")
	}
}

func TestMemoryManager_SharesStores(t *testing.T) {
	m := NewMemoryRepositoryManager()
	if m.Blogs(nil) != m.Blogs(nil) {
		t.Fatal("expected the same blogs store on every call")
	}
	if err := m.RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
