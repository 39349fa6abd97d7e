// Package castmember holds the CastMember aggregate: an actor or director
// videos reference by ID.
package castmember

import (
	"time"

	"github.com/google/uuid"

	"github.com/kinotek/catalog/internal/domain/validation"
)

// ID identifies a CastMember. Equality is by string value.
type ID string

// NewID generates a unique cast member ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// IDFrom wraps an externally supplied identifier.
func IDFrom(value string) ID {
	return ID(value)
}

// String returns the identifier's opaque string value.
func (id ID) String() string {
	return string(id)
}

// Type distinguishes the member's role in a production.
type Type string

const (
	TypeActor    Type = "ACTOR"
	TypeDirector Type = "DIRECTOR"
)

// TypeOf parses a type code. ok is false for unknown codes.
func TypeOf(value string) (Type, bool) {
	switch Type(value) {
	case TypeActor, TypeDirector:
		return Type(value), true
	default:
		return "", false
	}
}

// CastMember is the aggregate root for an actor or director.
type CastMember struct {
	ID        ID
	Name      string
	Type      Type
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCastMember creates a cast member.
func NewCastMember(name string, memberType Type) *CastMember {
	now := time.Now().UTC()
	return &CastMember{
		ID:        NewID(),
		Name:      name,
		Type:      memberType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// With restores a cast member from persisted state.
func With(id ID, name string, memberType Type, createdAt, updatedAt time.Time) *CastMember {
	return &CastMember{
		ID:        id,
		Name:      name,
		Type:      memberType,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Validate runs the cast member rule set against the given handler.
func (m *CastMember) Validate(handler validation.Handler) {
	newValidator(m, handler).Validate()
}

// Update replaces the member's mutable fields and bumps UpdatedAt.
func (m *CastMember) Update(name string, memberType Type) *CastMember {
	m.Name = name
	m.Type = memberType
	m.UpdatedAt = time.Now().UTC()
	return m
}
