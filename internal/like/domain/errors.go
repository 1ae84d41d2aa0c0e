package domain

import "howtouseai-backend/pkg/apperror"

var ErrUUIDRequired = apperror.Validation(
	"VALIDATION_ERROR", "uuid is required", "Input validation failed.", "uuid: required")
