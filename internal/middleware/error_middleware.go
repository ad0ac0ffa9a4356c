package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yraj/offerdesk/internal/app/models/dto"
	"github.com/yraj/offerdesk/internal/app/repositories"
	"github.com/yraj/offerdesk/internal/pkg/apperrors"
	"github.com/yraj/offerdesk/internal/pkg/letter"
	"github.com/yraj/offerdesk/internal/pkg/logger"
	"github.com/yraj/offerdesk/internal/pkg/studentid"
)

// HandleAPIError maps service and repository errors onto HTTP
// responses. Unmatched errors become a generic 500; nothing is
// swallowed.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, repositories.ErrDuplicateStudentID):
		// Distinct from a generic conflict: this is how the concurrent
		// next-id race surfaces, and the client reacts by fetching a
		// fresh identifier.
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student ID already exists").WithField("studentId")))

	case apperrors.Is(err, repositories.ErrCourseAlreadyExists,
		apperrors.ErrEmailAlreadyExists, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))

	case apperrors.Is(err, repositories.ErrNotFound, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))

	case errors.Is(err, studentid.ErrMalformedSequenceState):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMalformedSequenceState, "Stored last issued ID is malformed").WithDetails(err.Error())))

	case errors.Is(err, letter.ErrMissingPlaceholderValue):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDocumentGeneration, err.Error())))

	case errors.Is(err, letter.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDocumentTimeout, "Offer letter generation timed out")))

	case errors.Is(err, letter.ErrGeneration):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDocumentGeneration, "Offer letter generation failed")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case apperrors.Is(err, apperrors.ErrTokenInvalid,
		apperrors.ErrTokenRevoked, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Permission denied")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
