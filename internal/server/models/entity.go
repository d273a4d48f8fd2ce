// Package models holds the server-side domain types: the admin account, the
// five portfolio content collections and uploaded image descriptors.
package models

import (
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

// Base carries the fields every stored content item has. They are assigned
// by the server; values sent by clients are ignored.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) GetID() string      { return b.ID }
func (b *Base) SetID(id string)    { b.ID = id }
func (b *Base) Created() time.Time { return b.CreatedAt }
func (b *Base) Updated() time.Time { return b.UpdatedAt }

// Stamp sets both timestamps.
func (b *Base) Stamp(created, updated time.Time) {
	b.CreatedAt = created
	b.UpdatedAt = updated
}

// Entity is implemented by pointers to every content type.
type Entity interface {
	GetID() string
	SetID(id string)
	Created() time.Time
	Updated() time.Time
	Stamp(created, updated time.Time)
	Validate() error
}

// ListFilter narrows public listings. Nil fields do not filter. Published
// applies to blogs, Featured to projects; other collections ignore both.
type ListFilter struct {
	Published *bool
	Featured  *bool
}

func required(field, label, value string) error {
	if strings.TrimSpace(value) == "" {
		return common.NewValidationError(field, label+" is required")
	}
	return nil
}

func optionalURL(field, label, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return common.NewValidationError(field, label+" must be a valid URL")
	}
	return nil
}

func maxLen(field, label, value string, n int) error {
	if len([]rune(value)) > n {
		return common.NewValidationError(field, label+" is too long")
	}
	return nil
}

func nonNegative(field, label string, v int) error {
	if v < 0 {
		return common.NewValidationError(field, label+" must not be negative")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
