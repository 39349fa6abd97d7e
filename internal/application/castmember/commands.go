package castmember

import (
	"time"

	"github.com/kinotek/catalog/internal/domain/castmember"
)

// CreateCastMemberCommand carries the parameters for creating a cast member.
type CreateCastMemberCommand struct {
	Name string
	Type string
}

// UpdateCastMemberCommand carries the parameters for updating a cast member.
type UpdateCastMemberCommand struct {
	ID   string
	Name string
	Type string
}

// CreateCastMemberOutput is the projection returned on successful creation.
type CreateCastMemberOutput struct {
	ID string
}

// CastMemberOutput is the full projection of a cast member aggregate.
type CastMemberOutput struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CastMemberOutputFrom projects an aggregate.
func CastMemberOutputFrom(m *castmember.CastMember) CastMemberOutput {
	return CastMemberOutput{
		ID:        m.ID.String(),
		Name:      m.Name,
		Type:      string(m.Type),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
