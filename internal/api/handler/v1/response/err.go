package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the single error body shape: {"error": "..."}. The wrapped
// cause is logged, never rendered.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`

	err error
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrNotFound(message string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func ErrServiceUnavailable(message string) *Err {
	return &Err{
		StatusCode: http.StatusServiceUnavailable,
		Message:    message,
	}
}

func ErrConfiguration(message string) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		err:        err,
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error(err.Message,
			zap.Int("status", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.err),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
