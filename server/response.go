package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/commercekit/commercekit/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *apperrors.Error `json:"error"`
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondNotFound sends a 404 with a message.
func RespondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": message}})
}

// RespondBadRequest sends a 400 with a message.
func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": message}})
}

// RespondWithError maps a commerce error onto an HTTP status: upstream
// failures keep the backend's status code, network failures become 502,
// unsupported operations 501, configuration and validation problems 400.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !apperrors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperrors.KindUpstream:
		status = appErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
	case apperrors.KindNetwork:
		status = http.StatusBadGateway
	case apperrors.KindNotSupported:
		status = http.StatusNotImplemented
	case apperrors.KindConfiguration:
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: appErr})
}
