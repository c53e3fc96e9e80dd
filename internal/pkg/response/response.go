package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
)

// Envelope is the JSON shape shared by every endpoint:
// {success, statusCode, message, data?, errorMessages?}.
type Envelope struct {
	Success       bool                  `json:"success"`
	StatusCode    int                   `json:"statusCode"`
	Message       string                `json:"message"`
	Token         string                `json:"token,omitempty"`
	Data          any                   `json:"data,omitempty"`
	ErrorMessages []apperror.FieldError `json:"errorMessages,omitempty"`
	Stack         string                `json:"stack,omitempty"`
}

const debugKey = "response.debug"

// Debug returns a middleware that marks requests so Error includes the
// underlying error chain. The router installs it outside production only.
func Debug() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(debugKey, true)
		c.Next()
	}
}

// OK sends a success envelope with the given status code, message and data.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// OKWithToken sends a success envelope carrying an access token as a sibling
// of data, the shape the login endpoint uses.
func OKWithToken(c *gin.Context, status int, message, token string, data any) {
	c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Token:      token,
		Data:       data,
	})
}

// NoData renders the "No Data Found" outcome: a 404 envelope with an empty
// data array, distinct from a true server error.
func NoData(c *gin.Context) {
	c.JSON(http.StatusNotFound, Envelope{
		Success:    false,
		StatusCode: http.StatusNotFound,
		Message:    "No Data Found",
		Data:       []any{},
	})
}

// Error sends a JSON error envelope. AppError values determine the status
// code and field messages; anything else becomes a 500. Internal detail is
// attached only when the Debug middleware marked the request.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		env := Envelope{
			Success:       false,
			StatusCode:    appErr.Code,
			Message:       appErr.Message,
			ErrorMessages: appErr.Messages,
		}
		if c.GetBool(debugKey) && appErr.Err != nil {
			env.Stack = appErr.Err.Error()
		}
		c.JSON(appErr.Code, env)
		return
	}

	env := Envelope{
		Success:    false,
		StatusCode: http.StatusInternalServerError,
		Message:    "Server error. Please try again later.",
	}
	if c.GetBool(debugKey) && err != nil {
		env.Stack = err.Error()
	}
	c.JSON(http.StatusInternalServerError, env)
}

// ValidationError renders a 400 "Validation Error" envelope with per-field
// messages extracted from gin's binding errors.
func ValidationError(c *gin.Context, err error) {
	env := Envelope{
		Success:    false,
		StatusCode: http.StatusBadRequest,
		Message:    "Validation Error",
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			env.ErrorMessages = append(env.ErrorMessages, apperror.FieldError{
				Path:    fe.Field(),
				Message: "failed on rule: " + fe.Tag(),
			})
		}
	} else if err != nil {
		env.ErrorMessages = append(env.ErrorMessages, apperror.FieldError{
			Message: err.Error(),
		})
	}

	c.JSON(http.StatusBadRequest, env)
}
