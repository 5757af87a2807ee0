package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft is the in-progress order of one edit session.
type Draft struct {
	ID        uuid.UUID     `json:"id"`
	Order     DeliveryOrder `json:"order"`
	Existing  bool          `json:"existing"` // loaded from a saved order
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
