package memstore

import "github.com/dmitrijs2005/portfolio/internal/server/models"

// NewBlogs orders posts newest first and honours the Published filter.
func NewBlogs() *Store[models.Blog, *models.Blog] {
	return New[models.Blog](Options[models.Blog]{
		Match: func(b *models.Blog, f models.ListFilter) bool {
			return f.Published == nil || b.Published == *f.Published
		},
		Less: func(a, b *models.Blog) bool { return a.Date.After(b.Date) },
	})
}

// NewProjects orders by year, newest first, then by creation time, newest
// first, and honours the Featured filter.
func NewProjects() *Store[models.Project, *models.Project] {
	return New[models.Project](Options[models.Project]{
		Match: func(p *models.Project, f models.ListFilter) bool {
			return f.Featured == nil || p.Featured == *f.Featured
		},
		Less: func(a, b *models.Project) bool {
			if a.Year != b.Year {
				return a.Year > b.Year
			}
			return a.CreatedAt.After(b.CreatedAt)
		},
	})
}

func NewEducation() *Store[models.Education, *models.Education] {
	return New[models.Education](Options[models.Education]{
		Less: func(a, b *models.Education) bool { return a.Order < b.Order },
	})
}

func NewExperience() *Store[models.Experience, *models.Experience] {
	return New[models.Experience](Options[models.Experience]{
		Less: func(a, b *models.Experience) bool { return a.Order < b.Order },
	})
}

func NewExtracurricular() *Store[models.Extracurricular, *models.Extracurricular] {
	return New[models.Extracurricular](Options[models.Extracurricular]{
		Less: func(a, b *models.Extracurricular) bool { return a.Order < b.Order },
	})
}
