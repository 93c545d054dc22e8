package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"reimbursement_tracker/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// respondError writes err as {"error": "<message>"} with the status of its
// kind. Unexpected errors are logged and replaced by a generic message.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	_ = c.Error(err)

	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("unhandled error")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON decodes the request body into obj, answering 400 itself when the
// body is malformed or fails its binding rules.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + bindingMessage(err)})
		return false
	}
	return true
}

func bindingMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// paramID reads a numeric path parameter. Anything that is not an integer
// yields 0, which the services reject as an invalid id.
func paramID(c *gin.Context, name string) int {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0
	}
	return id
}
