package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "syllabus-tracker/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError keeps its own status
// code; anything else is served as 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 and aborts the handler chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
