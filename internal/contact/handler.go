package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ah-ugo/fombinatowers/internal/api"
	"github.com/Ah-ugo/fombinatowers/internal/email"
	"github.com/Ah-ugo/fombinatowers/internal/logger"
)

type Handler struct {
	repo       Repository
	email      *email.Service
	adminEmail string
}

func NewHandler(repo Repository, emailService *email.Service, adminEmail string) *Handler {
	return &Handler{repo: repo, email: emailService, adminEmail: adminEmail}
}

// @Summary      Submit a contact message
// @Description  Stores an enquiry and forwards it to the admin inbox.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body contact.SubmitRequest true "Contact payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /contact [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), &Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save message"})
		return
	}

	// Best effort: the submission is stored either way.
	if err := h.email.SendContactNotification(c.Request.Context(), h.adminEmail, req.Name, req.Email, req.Phone, req.Message); err != nil {
		logger.Errorf("Failed to queue contact notification for message %s: %v", created.ID, err)
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Message sent successfully"})
}

// @Summary      List contact messages
// @Description  Admin-only: every enquiry, newest first.
// @Tags         admin,contact
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} contact.Message
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/contacts [get]
func (h *Handler) List(c *gin.Context) {
	messages, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
