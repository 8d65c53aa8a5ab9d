// Package session carries the caller's session through request contexts.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleShopOwner Role = "shopOwner"
	RoleEmployee  Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleShopOwner, RoleEmployee:
		return true
	}
	return false
}

var ErrNoSession = errors.New("no session")

type Session struct {
	ID   string
	Role Role
	Name string
}

// New validates the raw session attributes supplied by the client.
func New(id, role, name string) (Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Session{}, fmt.Errorf("session id[%s] is not a uuid: %w", id, err)
	}

	r := Role(role)
	if !r.Valid() {
		return Session{}, fmt.Errorf("session role[%s] is not valid", role)
	}

	return Session{ID: parsed.String(), Role: r, Name: name}, nil
}

func (s Session) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

type ctxKey struct{}

func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok {
		return Session{}, ErrNoSession
	}
	return s, nil
}
