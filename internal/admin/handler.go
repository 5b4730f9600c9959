package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ah-ugo/fombinatowers/internal/api"
	"github.com/Ah-ugo/fombinatowers/internal/auth"
	"github.com/Ah-ugo/fombinatowers/internal/logger"
)

type Handler struct {
	repo      Repository
	jwtSecret string
}

func NewHandler(repo Repository, jwtSecret string) *Handler {
	return &Handler{repo: repo, jwtSecret: jwtSecret}
}

// @Summary      Admin login
// @Description  Exchanges admin credentials for a bearer token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body admin.LoginRequest true "Credentials"
// @Success      200 {object} admin.LoginResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	a, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			// Same response as a bad password: no account enumeration.
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		return
	}

	if !auth.CheckPassword(a.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(a.Email, "admin", h.jwtSecret)
	if err != nil {
		logger.Errorf("Failed to issue token for %s: %v", a.Email, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Email: a.Email,
		Name:  a.Name,
	})
}
