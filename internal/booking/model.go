package booking

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Booking is one customer attempt to lease a space. Amount is the deposit in
// major currency units, computed from the space's price at creation and
// frozen; later price edits never change it. PaymentReference is set exactly
// once, on successful verification, and is unique across all bookings.
type Booking struct {
	ID               string     `db:"id" json:"id"`
	SpaceID          string     `db:"space_id" json:"space_id"`
	Name             string     `db:"name" json:"name"`
	Email            string     `db:"email" json:"email"`
	Phone            string     `db:"phone" json:"phone"`
	CompanyName      *string    `db:"company_name" json:"company_name,omitempty"`
	Status           string     `db:"status" json:"status"`
	PaymentStatus    string     `db:"payment_status" json:"payment_status"`
	Amount           int64      `db:"amount" json:"amount"`
	PaymentReference *string    `db:"payment_reference" json:"payment_reference,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type BookSpaceRequest struct {
	SpaceID     string  `json:"spaceId" validate:"required"`
	UserName    string  `json:"userName" validate:"required"`
	UserEmail   string  `json:"userEmail" validate:"required,email"`
	UserPhone   string  `json:"userPhone" validate:"required"`
	CompanyName *string `json:"companyName,omitempty"`
}

type BookSpaceResponse struct {
	BookingID  string `json:"bookingId"`
	PaymentURL string `json:"paymentUrl"`
	Reference  string `json:"reference"`
}

// Settlement is the outcome of a verified payment, reported back to the
// customer-facing callback page.
type Settlement struct {
	Reference string `json:"reference"`
	SpaceName string `json:"spaceName"`
	Amount    int64  `json:"amount"`
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	SpaceName string `json:"spaceName"`
	Amount    int64  `json:"amount"`
}
