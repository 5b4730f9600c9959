package space

import (
	"time"

	"github.com/lib/pq"
)

const (
	TypeOffice    = "office"
	TypeMall      = "mall"
	TypeEventHall = "event-hall"
)

// Space is a leasable unit in the tower. Price is the monthly rate in major
// currency units (naira, no decimals). The booking flow reads Available but
// never writes it; mutation happens only through the admin edit endpoints.
type Space struct {
	ID          string         `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Type        string         `db:"type" json:"type"`
	Floor       int            `db:"floor" json:"floor"`
	Size        int            `db:"size" json:"size"`
	Price       int64          `db:"price" json:"price"`
	Available   bool           `db:"available" json:"available"`
	Features    pq.StringArray `db:"features" json:"features"`
	Description string         `db:"description" json:"description"`
	ImageURL    string         `db:"image_url" json:"imageUrl"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}

type UpsertSpaceRequest struct {
	Name        string   `json:"name" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=office mall event-hall"`
	Floor       int      `json:"floor" validate:"gte=0"`
	Size        int      `json:"size" validate:"gte=0"`
	Price       int64    `json:"price" validate:"required,gte=0"`
	Available   bool     `json:"available"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}
