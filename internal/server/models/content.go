package models

import "time"

type Blog struct {
	Base
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	ReadTime    string    `json:"readTime"`
	Published   bool      `json:"published"`
	Date        time.Time `json:"date"`
}

func (b *Blog) Validate() error {
	return firstError(
		required("title", "Title", b.Title),
		maxLen("title", "Title", b.Title, 200),
		required("description", "Description", b.Description),
		required("content", "Content", b.Content),
		tagsValid("tags", "Tag", b.Tags),
	)
}

type Project struct {
	Base
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	LiveLink    string   `json:"liveLink"`
	CodeLink    string   `json:"codeLink"`
	Year        string   `json:"year"`
	TechStack   []string `json:"techStack"`
	Featured    bool     `json:"featured"`
}

func (p *Project) Validate() error {
	return firstError(
		required("title", "Title", p.Title),
		maxLen("title", "Title", p.Title, 200),
		required("description", "Description", p.Description),
		required("image", "Image", p.Image),
		required("liveLink", "Live link", p.LiveLink),
		optionalURL("liveLink", "Live link", p.LiveLink),
		optionalURL("codeLink", "Code link", p.CodeLink),
		tagsValid("techStack", "Technology", p.TechStack),
	)
}

type Education struct {
	Base
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Order       int    `json:"order"`
}

func (e *Education) Validate() error {
	return firstError(
		required("degree", "Degree", e.Degree),
		required("institution", "Institution", e.Institution),
		required("year", "Year", e.Year),
		nonNegative("order", "Order", e.Order),
	)
}

type Experience struct {
	Base
	Position    string `json:"position"`
	Company     string `json:"company"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (e *Experience) Validate() error {
	return firstError(
		required("position", "Position", e.Position),
		required("company", "Company", e.Company),
		required("year", "Year", e.Year),
		nonNegative("order", "Order", e.Order),
	)
}

type Extracurricular struct {
	Base
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
}

func (e *Extracurricular) Validate() error {
	return firstError(
		required("role", "Role", e.Role),
		required("organization", "Organization", e.Organization),
		required("year", "Year", e.Year),
		nonNegative("order", "Order", e.Order),
	)
}

func tagsValid(field, label string, tags []string) error {
	for _, t := range tags {
		if err := required(field, label, t); err != nil {
			return err
		}
		if err := maxLen(field, label, t, 50); err != nil {
			return err
		}
	}
	return nil
}

// Defaulter fills server-side defaults before an item is stored.
type Defaulter interface {
	SetDefaults(now time.Time)
}

func (b *Blog) SetDefaults(now time.Time) {
	if b.Date.IsZero() {
		b.Date = now
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
}

func (p *Project) SetDefaults(time.Time) {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
}
