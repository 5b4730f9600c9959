package space

import (
	"errors"
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

// @Summary      Create a space
// @Description  Admin-only: register a new leasable unit.
// @Tags         admin,spaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body space.UpsertSpaceRequest true "Space payload"
// @Success      201 {object} space.Space
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /spaces [post]
func (h *Handler) Create(c *gin.Context) {
	var req UpsertSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), requestToSpace(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create space"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a space
// @Description  Admin-only: edit an existing unit. The only write path for
// @Description  price and availability.
// @Tags         admin,spaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                   true "Space ID"
// @Param        request body space.UpsertSpaceRequest true "Space payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /spaces/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpsertSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	err := h.repo.Update(c.Request.Context(), id, requestToSpace(req))
	if err != nil {
		if errors.Is(err, ErrSpaceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Space not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update space"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Space updated successfully"})
}

func requestToSpace(req UpsertSpaceRequest) *Space {
	return &Space{
		Name:        req.Name,
		Type:        req.Type,
		Floor:       req.Floor,
		Size:        req.Size,
		Price:       req.Price,
		Available:   req.Available,
		Features:    req.Features,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}
