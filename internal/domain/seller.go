package domain

import (
	"time"

	"github.com/uptrace/bun"
)

// Seller is the bookable resource. Appointments reference it by ID only.
type Seller struct {
	bun.BaseModel `bun:"table:sellers"`

	ID          string    `bun:"id,pk"`
	DisplayName string    `bun:"display_name,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
