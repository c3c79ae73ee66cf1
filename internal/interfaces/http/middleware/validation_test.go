package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clinicfinder/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enquiryInput struct {
	PackageID string `json:"package_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required,min=2"`
	UserEmail string `json:"user_email" binding:"required,email"`
	Message   string `json:"message" binding:"max=500"`
}

func newValidationRouter() *gin.Engine {
	SetupValidator()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req enquiryInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func postJSON(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	router := newValidationRouter()

	t.Run("field messages", func(t *testing.T) {
		w := postJSON(router, `{"user_name":"J","user_email":"not-an-email","message":"`+strings.Repeat("m", 501)+`"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.RequestID)

		got := map[string]string{}
		for _, d := range resp.Error.Details {
			got[d.Field] = d.Message
		}
		assert.Equal(t, map[string]string{
			"package_id": "Package is required",
			"user_name":  "Name must be at least 2 characters",
			"user_email": "Please enter a valid email",
			"message":    "Message too long (max 500 characters)",
		}, got)
	})

	t.Run("valid input", func(t *testing.T) {
		w := postJSON(router, `{"package_id":"p1","user_name":"Jo","user_email":"jo@x.com"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed JSON has no details", func(t *testing.T) {
		w := postJSON(router, `{"package_id":`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Error.Details)
	})
}

func TestGetValidationMessage_Generic(t *testing.T) {
	type input struct {
		Required string `json:"required" validate:"required"`
		Min      string `json:"min" validate:"min=5"`
		Max      string `json:"max" validate:"max=3"`
		OneOf    string `json:"one_of" validate:"omitempty,oneof=a b"`
	}

	v := validator.New()
	v.SetTagName("validate")
	err := v.Struct(input{Min: "ab", Max: "abcdef", OneOf: "c"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	got := map[string]string{}
	for _, e := range errs {
		got[e.Field()] = getValidationMessage(e)
	}
	assert.Equal(t, "This field is required", got["Required"])
	assert.Equal(t, "Must be at least 5 characters", got["Min"])
	assert.Equal(t, "Must be at most 3 characters", got["Max"])
	assert.Equal(t, "Must be one of: a b", got["OneOf"])
}
