package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and provenance timestamps shared by all
// stored entities. CreatedAt and UpdatedAt are maintained by the repositories,
// never by callers.
type BaseEntity struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
