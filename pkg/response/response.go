package response

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"howtouseai-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Envelope is the uniform JSON body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorBody is placed in Envelope.Data when Success is false.
type ErrorBody struct {
	ErrorCode    string  `json:"errorCode"`
	ErrorMessage string  `json:"errorMessage"`
	Details      *string `json:"details"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Failure writes an error envelope with an explicit status and code.
func Failure(c *gin.Context, status int, code, errorMessage, details, message string) {
	body := ErrorBody{ErrorCode: code, ErrorMessage: errorMessage}
	if details != "" {
		body.Details = &details
	}
	c.JSON(status, Envelope{
		Success: false,
		Data:    body,
		Message: message,
		Error:   code,
	})
}

// Error translates err into the matching status and error envelope.
func Error(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := formatValidationErrors(validationErrs)
		zap.L().Warn("validation failed", zap.String("path", c.FullPath()), zap.String("details", details))
		Failure(c, http.StatusBadRequest, "VALIDATION_ERROR", "input data is invalid", details, "Input validation failed.")
		return
	}

	if appErr, ok := apperror.As(err); ok {
		status := appErr.Status()
		if status >= http.StatusInternalServerError {
			zap.L().Error("request failed", zap.String("code", appErr.Code), zap.Error(err))
		} else {
			zap.L().Warn("request rejected", zap.String("code", appErr.Code), zap.String("reason", err.Error()))
		}
		Failure(c, status, appErr.Code, err.Error(), appErr.Details, appErr.Summary)
		return
	}

	zap.L().Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
	Failure(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", err.Error(),
		"An error occurred while processing the request.")
}

// BindError reports a request body that could not be decoded or validated.
func BindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Error(c, err)
		return
	}
	Failure(c, http.StatusBadRequest, "VALIDATION_ERROR", "input data is invalid", err.Error(), "Input validation failed.")
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

// ParamID parses a positive numeric path parameter, writing a 400 response
// and returning false when it is malformed.
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		Error(c, fmt.Errorf("%w: %s=%q", apperror.ErrInvalidArgument, name, c.Param(name)))
		return 0, false
	}
	return uint(id), true
}
