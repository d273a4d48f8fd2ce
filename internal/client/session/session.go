// Package session tracks the CLI's view of the administrator session and
// gates commands that need one.
//
// A Context moves through Unknown, Verifying, then Authenticated or
// Unauthenticated. It is a convenience for the CLI only: the server still
// authorizes every privileged call on its own.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/services"
)

type State int

const (
	Unknown State = iota
	Verifying
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Verifying:
		return "verifying"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	}
	return "invalid"
}

type Snapshot struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	State           State
}

type Context struct {
	auth services.AuthService

	mu        sync.Mutex
	state     State
	user      *models.User
	token     string
	gen       uint64
	listeners []func(Snapshot)
}

func New(auth services.AuthService) *Context {
	return &Context{auth: auth}
}

// OnChange registers fn to be called after every state change.
func (c *Context) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

func (c *Context) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Context) snapshotLocked() Snapshot {
	return Snapshot{
		User:            c.user,
		Token:           c.token,
		IsAuthenticated: c.state == Authenticated,
		IsLoading:       c.state == Verifying,
		State:           c.state,
	}
}

// set applies a transition if gen is still current and notifies listeners.
func (c *Context) set(gen uint64, state State, user *models.User, token string) Snapshot {
	c.mu.Lock()
	if gen != c.gen {
		s := c.snapshotLocked()
		c.mu.Unlock()
		return s
	}
	changed := c.state != state || c.token != token || c.user != user
	c.state, c.user, c.token = state, user, token
	s := c.snapshotLocked()
	listeners := append([]func(Snapshot){}, c.listeners...)
	c.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(s)
		}
	}
	return s
}

func (c *Context) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

func (c *Context) current() (*models.User, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user, c.token
}

// Check verifies the stored session. A later Check supersedes an earlier
// one still in flight.
func (c *Context) Check(ctx context.Context) Snapshot {
	gen := c.begin()
	user, token := c.current()
	c.set(gen, Verifying, user, token)

	if !c.auth.VerifyToken(ctx) {
		return c.set(gen, Unauthenticated, nil, "")
	}
	user, token = c.load(ctx)
	return c.set(gen, Authenticated, user, token)
}

func (c *Context) Login(ctx context.Context, email, password string) services.Result {
	res := c.auth.Login(ctx, email, password)
	if res.Success {
		user, token := c.load(ctx)
		c.set(c.begin(), Authenticated, user, token)
	}
	return res
}

// Logout always ends in Unauthenticated.
func (c *Context) Logout(ctx context.Context) error {
	gen := c.begin()
	err := c.auth.Logout(ctx)
	c.set(gen, Unauthenticated, nil, "")
	return err
}

func (c *Context) load(ctx context.Context) (*models.User, string) {
	user, err := c.auth.User(ctx)
	if err != nil {
		user = nil
	}
	token, err := c.auth.Token(ctx)
	if err != nil {
		token = ""
	}
	return user, token
}
