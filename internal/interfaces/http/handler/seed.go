package handler

import (
	"context"
	"net/http"

	"github.com/clinicfinder/backend/internal/application/seed"
	"github.com/clinicfinder/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Seeder resets the catalog to the demo dataset
type Seeder interface {
	Seed(ctx context.Context) (*seed.Counts, error)
}

// SeedResponse is the body of a successful POST /seed
// @name SeedResponse
type SeedResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Database seeded successfully"`
	Counts  seed.Counts `json:"counts"`
}

// SeedHandler exposes the destructive catalog reset
type SeedHandler struct {
	BaseHandler
	seeder Seeder
}

// NewSeedHandler creates a new SeedHandler
func NewSeedHandler(seeder Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed godoc
// @ID           seedCatalog
// @Summary      Reset the catalog
// @Description  Deletes all concerns, treatments, mappings and packages and inserts the demo dataset.
// @Description  Not atomic. Unauthenticated.
// @Tags         seed
// @Produce      json
// @Success      200 {object} SeedResponse
// @Failure      500 {object} ErrorResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	counts, err := h.seeder.Seed(c.Request.Context())
	if err != nil {
		// the underlying message is passed through on purpose
		_ = c.Error(err)
		h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	c.JSON(http.StatusOK, SeedResponse{
		Success: true,
		Message: seed.SuccessMessage,
		Counts:  *counts,
	})
}
