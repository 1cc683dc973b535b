package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler maps domain sentinel errors to the HTTP taxonomy.
// Anything unrecognized becomes a generic 500 without internal detail.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, "Please enter all required fields")
	case errors.Is(err, entity.ErrDuplicateEmail):
		ErrorHandler(c, http.StatusBadRequest, entity.ErrDuplicateEmail.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, entity.ErrInvalidCredentials.Error())
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, entity.ErrForbidden.Error())
	case errors.Is(err, entity.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, entity.ErrUserNotFound.Error())
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, entity.ErrNotFound.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}
