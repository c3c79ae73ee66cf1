package handler

import (
	"context"
	"net/http"

	enquiryapp "github.com/clinicfinder/backend/internal/application/enquiry"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the optional client supplied idempotency key
const IdempotencyKeyHeader = "Idempotency-Key"

// maxIdempotencyKeyLength bounds the header value
const maxIdempotencyKeyLength = 255

// EnquiryService creates and lists enquiries
type EnquiryService interface {
	Create(ctx context.Context, req enquiryapp.CreateEnquiryRequest) (*enquiryapp.EnquiryResponse, error)
	List(ctx context.Context) ([]enquiryapp.EnquiryListItem, error)
}

// CreateEnquiryRequest is the body of POST /enquiries
// @name CreateEnquiryRequest
type CreateEnquiryRequest struct {
	PackageID string `json:"package_id" binding:"required" example:"01964a0e-7d1c-7b8e-9b1a-3c2d1e0f9a8b"`
	UserName  string `json:"user_name" binding:"required,min=2" example:"Jo"`
	UserEmail string `json:"user_email" binding:"required,email" example:"jo@example.com"`
	Message   string `json:"message" binding:"max=500" example:"Is there availability next week?"`
}

// EnquiryHandler serves enquiry submission and the admin listing
type EnquiryHandler struct {
	BaseHandler
	service EnquiryService
}

// NewEnquiryHandler creates a new EnquiryHandler
func NewEnquiryHandler(service EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

// Create godoc
// @ID           createEnquiry
// @Summary      Submit an enquiry
// @Description  Stores a contact request for a package. The package id is not checked against the catalog.
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Rejects a repeated submission with 409"
// @Param        request body CreateEnquiryRequest true "Enquiry"
// @Success      201 {object} enquiryapp.EnquiryResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /enquiries [post]
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	key := c.GetHeader(IdempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		h.BadRequest(c, "Idempotency-Key too long")
		return
	}

	created, err := h.service.Create(c.Request.Context(), enquiryapp.CreateEnquiryRequest{
		PackageID:      req.PackageID,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		Message:        req.Message,
		IdempotencyKey: key,
	})
	if err != nil {
		h.HandleError(c, err, "Failed to create enquiry")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List godoc
// @ID           listEnquiries
// @Summary      List enquiries
// @Description  Returns every enquiry with its package inline; package is null when it no longer exists.
// @Tags         enquiries
// @Produce      json
// @Success      200 {array}  enquiryapp.EnquiryListItem
// @Failure      500 {object} ErrorResponse
// @Router       /enquiries [get]
func (h *EnquiryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "Failed to list enquiries")
		return
	}
	if items == nil {
		items = []enquiryapp.EnquiryListItem{}
	}
	c.JSON(http.StatusOK, items)
}
