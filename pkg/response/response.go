package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/jobboardhq/jobboard/pkg/errors"
)

// ErrorBody is the failure payload. Every failed request carries a single
// human-readable detail message and nothing else.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSON writes a success payload as-is, without an envelope.
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Raw writes a pre-serialized JSON payload. Cached query results are stored in
// their wire form and must reach the client byte-identical.
func Raw(c *gin.Context, statusCode int, payload []byte) {
	c.Data(statusCode, "application/json; charset=utf-8", payload)
}

// Error writes a JSON error response derived from an AppError.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = appErrors.ErrInternalServer
	}

	appErr := appErrors.FromError(err)
	status := appErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorBody{Detail: appErr.Message})
}
