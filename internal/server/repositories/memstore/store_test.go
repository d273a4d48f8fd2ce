package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/education"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/projects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ blogs.Repository     = NewBlogs()
	_ projects.Repository  = NewProjects()
	_ education.Repository = NewEducation()
)

func blog(id string, published bool, date time.Time) *models.Blog {
	return &models.Blog{
		Base:      models.Base{ID: id, CreatedAt: date, UpdatedAt: date},
		Title:     id,
		Published: published,
		Date:      date,
	}
}

func TestBlogs_ListFilterAndOrder(t *testing.T) {
	s := NewBlogs()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, b := range []*models.Blog{
		blog("old", true, base),
		blog("new", true, base.Add(48*time.Hour)),
		blog("draft", false, base.Add(24*time.Hour)),
	} {
		_, err := s.Create(ctx, b)
		require.NoError(t, err)
	}

	all, err := s.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "draft", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})

	published := true
	pub, err := s.List(ctx, models.ListFilter{Published: &published})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, []string{pub[0].ID, pub[1].ID})

	unpublished := false
	drafts, err := s.List(ctx, models.ListFilter{Published: &unpublished})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "draft", drafts[0].ID)
}

func TestProjects_FeaturedFilter(t *testing.T) {
	s := NewProjects()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Project{Base: models.Base{ID: "a"}, Year: "2023", Featured: true})
	require.NoError(t, err)
	_, err = s.Create(ctx, &models.Project{Base: models.Base{ID: "b"}, Year: "2025"})
	require.NoError(t, err)

	all, err := s.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, "b", all[0].ID, "newest year first")

	featured := true
	got, err := s.List(ctx, models.ListFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestEducation_OrderThenCreation(t *testing.T) {
	s := NewEducation()
	ctx := context.Background()
	t0 := time.Now()

	items := []*models.Education{
		{Base: models.Base{ID: "second", CreatedAt: t0.Add(time.Second)}, Order: 1},
		{Base: models.Base{ID: "first", CreatedAt: t0}, Order: 1},
		{Base: models.Base{ID: "zero", CreatedAt: t0.Add(time.Hour)}, Order: 0},
	}
	for _, it := range items {
		_, err := s.Create(ctx, it)
		require.NoError(t, err)
	}

	got, err := s.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"zero", "first", "second"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGetUpdateDelete(t *testing.T) {
	s := NewExperience()
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.Get(ctx, "x")
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = s.Create(ctx, &models.Experience{Base: models.Base{ID: "x", CreatedAt: created}, Position: "Dev"})
	require.NoError(t, err)

	updated := time.Now()
	got, err := s.Update(ctx, &models.Experience{Base: models.Base{ID: "x", UpdatedAt: updated}, Position: "Lead"})
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt, "creation time survives replacement")

	stored, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Lead", stored.Position)
	assert.Equal(t, updated, stored.UpdatedAt)

	_, err = s.Update(ctx, &models.Experience{Base: models.Base{ID: "nope"}})
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, s.Delete(ctx, "x"))
	require.ErrorIs(t, s.Delete(ctx, "x"), common.ErrNotFound)
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewExtracurricular()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.Extracurricular{Base: models.Base{ID: "c"}, Role: "Lead"})
	require.NoError(t, err)

	got, err := s.Get(ctx, "c")
	require.NoError(t, err)
	got.Role = "changed"

	again, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "Lead", again.Role)
}

func TestProjects_SameYearNewestCreatedFirst(t *testing.T) {
	s := NewProjects()
	ctx := context.Background()
	t0 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	for _, p := range []*models.Project{
		{Base: models.Base{ID: "older", CreatedAt: t0}, Year: "2024"},
		{Base: models.Base{ID: "newer", CreatedAt: t0.Add(time.Hour)}, Year: "2024"},
		{Base: models.Base{ID: "latest-year", CreatedAt: t0.Add(-time.Hour)}, Year: "2025"},
	} {
		_, err := s.Create(ctx, p)
		require.NoError(t, err)
	}

	items, err := s.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"latest-year", "newer", "older"}, []string{items[0].ID, items[1].ID, items[2].ID})
}
