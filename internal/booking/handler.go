package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ah-ugo/fombinatowers/internal/api"
	"github.com/Ah-ugo/fombinatowers/internal/payment"
	"github.com/Ah-ugo/fombinatowers/internal/space"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Book a space
// @Description  Creates a pending booking for a 10% deposit and returns the
// @Description  gateway checkout URL the customer is redirected to.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.BookSpaceRequest true "Booking payload"
// @Success      200 {object} booking.BookSpaceResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /book-space [post]
func (h *Handler) BookSpace(c *gin.Context) {
	var req BookSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	resp, err := h.service.BookSpace(c.Request.Context(), req)
	if err != nil {
		var gwErr *payment.GatewayError
		switch {
		case errors.Is(err, space.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Space not found"})
		case errors.Is(err, ErrSpaceUnavailable):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Space is not available"})
		case errors.As(err, &gwErr):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Payment initialization failed"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Verify a payment
// @Description  Confirms the booking behind a gateway reference, records the
// @Description  settlement, and queues the confirmation email. Safe to call
// @Description  repeatedly for the same reference.
// @Tags         bookings
// @Produce      json
// @Param        reference path string true "Payment reference"
// @Success      200 {object} booking.VerifyPaymentResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /verify-payment/{reference} [get]
func (h *Handler) VerifyPayment(c *gin.Context) {
	reference := c.Param("reference")

	settlement, err := h.service.VerifyAndSettle(c.Request.Context(), reference)
	if err != nil {
		var verr *payment.VerificationError
		var gwErr *payment.GatewayError
		switch {
		case errors.Is(err, ErrInvalidReference):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Malformed payment reference"})
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrReferenceConflict), errors.Is(err, ErrDuplicateReference):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Reference already settled for another booking"})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Payment verification failed"})
		case errors.As(err, &gwErr):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Payment verification failed"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to verify payment"})
		}
		return
	}

	c.JSON(http.StatusOK, VerifyPaymentResponse{
		Success:   true,
		Reference: settlement.Reference,
		SpaceName: settlement.SpaceName,
		Amount:    settlement.Amount,
	})
}

// @Summary      List all bookings
// @Description  Admin-only: every booking, newest first.
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} booking.Booking
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.GetAllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
