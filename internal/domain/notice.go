package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notice struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
