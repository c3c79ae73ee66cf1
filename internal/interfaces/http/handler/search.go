package handler

import (
	"context"
	"net/http"

	"github.com/clinicfinder/backend/internal/application/resolution"
	"github.com/gin-gonic/gin"
)

// ConcernResolver resolves a concern name to treatments and packages
type ConcernResolver interface {
	Resolve(ctx context.Context, query string) (*resolution.Result, error)
}

// SearchHandler serves concern searches
type SearchHandler struct {
	BaseHandler
	resolver ConcernResolver
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(resolver ConcernResolver) *SearchHandler {
	return &SearchHandler{resolver: resolver}
}

// Search godoc
// @ID           searchConcern
// @Summary      Search packages by concern
// @Description  Lower-cases the concern and returns its treatments and the packages offering them.
// @Description  An unknown concern returns concern null with empty lists.
// @Tags         search
// @Produce      json
// @Param        concern query string true "Concern name, e.g. acne scars"
// @Success      200 {object} resolution.Result
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.resolver.Resolve(c.Request.Context(), c.Query("concern"))
	if err != nil {
		h.HandleError(c, err, "Failed to search concerns")
		return
	}
	c.JSON(http.StatusOK, result)
}
