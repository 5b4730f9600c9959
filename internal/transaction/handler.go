package transaction

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ah-ugo/fombinatowers/internal/api"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// @Summary      List all transactions
// @Description  Admin-only: the full settlement ledger, newest first.
// @Tags         admin,transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} transaction.Transaction
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/transactions [get]
func (h *Handler) List(c *gin.Context) {
	transactions, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
