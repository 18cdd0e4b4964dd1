// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dealradar/dealradar-gateway/internal/i18n"
	"github.com/dealradar/dealradar-gateway/internal/upstream"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyValidationInvalid, "input")
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", message, errors)
}

func NotFoundResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", i18n.T(lang, i18n.KeyErrorNotFound), nil)
}

// RedirectResponse is how a guard tells the client to navigate away: the
// page-state API never issues HTTP redirects itself.
func RedirectResponse(c *gin.Context, statusCode int, code, message, target string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:     code,
			Message:  message,
			Redirect: target,
		},
	})
}

// UpstreamErrorResponse maps the upstream error taxonomy onto the
// response envelope: unreachable and session-expired get their dedicated
// shapes, server errors surface the server's own message.
func UpstreamErrorResponse(c *gin.Context, err error) {
	lang := GetLangFromContext(c)

	switch {
	case errors.Is(err, upstream.ErrSessionExpired):
		RedirectResponse(c, http.StatusUnauthorized, "SESSION_EXPIRED",
			i18n.T(lang, i18n.KeyAuthSessionExpired), "/login")
	case errors.Is(err, upstream.ErrServerUnreachable):
		ErrorResponse(c, http.StatusBadGateway, "SERVER_UNREACHABLE",
			i18n.T(lang, i18n.KeyErrorServerUnreachable), nil)
	default:
		if apiErr, ok := upstream.AsAPIError(err); ok {
			ErrorResponse(c, apiErr.Status, "UPSTREAM_ERROR", apiErr.Message, nil)
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
