package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
)

// Failure aborts the request with the `{success:false, message}` envelope.
// Unrecognized errors are reported as a generic 500 and logged; the process
// never crashes on a per-request error.
func Failure(c *gin.Context, log *zap.Logger, err error) {
	if appErr, ok := apperr.From(err); ok {
		c.AbortWithStatusJSON(appErr.Status, gin.H{"success": false, "message": appErr.Message})
		return
	}
	if log != nil {
		log.Error("unhandled request error", zap.Error(err), zap.String("path", c.FullPath()))
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": apperr.ErrInternal.Message,
	})
}

// Success sends the `{success:true, message, data}` envelope.
func Success(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// BindFailure reports a request-body binding error as a 400 with a readable
// field message when the underlying cause is input validation.
func BindFailure(c *gin.Context, err error) {
	message := "Invalid request body"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		message = fieldMessage(verrs[0])
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func fieldMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters long.", field, e.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s.", field, e.Param())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", field, e.Tag())
	}
}
