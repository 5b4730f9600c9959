package transaction

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Transaction is one settled payment. Rows are written once, on successful
// verification, and never updated or deleted; GatewayData keeps the raw
// verify payload for audit and dispute resolution.
type Transaction struct {
	ID          string         `db:"id" json:"id"`
	BookingID   string         `db:"booking_id" json:"booking_id"`
	Reference   string         `db:"reference" json:"reference"`
	Amount      int64          `db:"amount" json:"amount"`
	Status      string         `db:"status" json:"status"`
	GatewayData types.JSONText `db:"gateway_data" json:"gateway_data"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}
