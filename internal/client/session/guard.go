package session

import (
	"context"
	"errors"
	"fmt"
)

var ErrLoginRequired = errors.New("login required")

// DefaultLoginTarget is where an unauthenticated user is sent.
const DefaultLoginTarget = "folio login"

// LoginRequiredError matches ErrLoginRequired and names the login target.
type LoginRequiredError struct {
	Target string
}

func (e *LoginRequiredError) Error() string {
	return fmt.Sprintf("login required: run `%s`", e.Target)
}

func (e *LoginRequiredError) Is(target error) bool { return target == ErrLoginRequired }

type Guard struct {
	ctx    *Context
	target string
}

func NewGuard(c *Context, loginTarget string) *Guard {
	if loginTarget == "" {
		loginTarget = DefaultLoginTarget
	}
	return &Guard{ctx: c, target: loginTarget}
}

// Require runs fn with an authenticated snapshot. The first call verifies
// the session before deciding.
func (g *Guard) Require(ctx context.Context, fn func(Snapshot) error) error {
	s := g.ctx.Snapshot()
	if s.State == Unknown || s.State == Verifying {
		s = g.ctx.Check(ctx)
	}
	if !s.IsAuthenticated {
		return &LoginRequiredError{Target: g.target}
	}
	return fn(s)
}
