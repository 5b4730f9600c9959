package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// referencePrefix tags payment references issued by this system. The full
// reference is the prefix plus the booking id, so verification can recover
// the booking without a lookup table.
const referencePrefix = "FT-"

var ErrInvalidReference = errors.New("malformed payment reference")

func PaymentReference(bookingID string) string {
	return referencePrefix + bookingID
}

func BookingIDFromReference(reference string) (string, error) {
	if !strings.HasPrefix(reference, referencePrefix) {
		return "", ErrInvalidReference
	}

	id := strings.TrimPrefix(reference, referencePrefix)
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidReference
	}

	return id, nil
}
