// Package credentials keeps the single administrator account. The account is
// seeded once at startup from configuration and looked up on every login.
package credentials

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	// AdminID is the fixed identifier of the seeded account.
	AdminID = "admin-1"

	// DefaultCost is the bcrypt work factor used for the admin password.
	DefaultCost = 12
)

var ErrEmptyCredentials = errors.New("admin email and password must not be empty")

// Store holds at most one admin record. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	admin *models.Admin
	cost  int
	now   func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewStore returns an empty store hashing with cost (DefaultCost when <= 0).
func NewStore(cost int) *Store {
	if cost <= 0 {
		cost = DefaultCost
	}
	return &Store{cost: cost, now: time.Now}
}

// Initialize seeds the admin account. When an account already exists it is
// returned unchanged and the password is not re-hashed.
func (s *Store) Initialize(ctx context.Context, email, rawPassword string) (*models.Admin, error) {
	if email == "" || rawPassword == "" {
		return nil, ErrEmptyCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin != nil {
		return s.copyAdmin(), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.cost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	s.admin = &models.Admin{
		ID:           AdminID,
		Email:        email,
		PasswordHash: hash,
		Role:         common.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.copyAdmin(), nil
}

// FindByEmail matches the email exactly, case included.
func (s *Store) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.admin == nil || s.admin.Email != email {
		return nil, common.ErrNotFound
	}
	return s.copyAdmin(), nil
}

// CheckPassword compares candidate with the admin's hash in constant time.
func (s *Store) CheckPassword(admin *models.Admin, candidate string) bool {
	return bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(candidate)) == nil
}

// DummyCheck performs a comparison against a throwaway hash so that a login
// for an unknown email costs about as much as one with a wrong password.
func (s *Store) DummyCheck(candidate string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-the-admin-password"), s.cost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(candidate))
}

func (s *Store) copyAdmin() *models.Admin {
	a := *s.admin
	a.PasswordHash = append([]byte(nil), s.admin.PasswordHash...)
	return &a
}
