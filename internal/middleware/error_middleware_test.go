package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yraj/offerdesk/internal/app/models/dto"
	"github.com/yraj/offerdesk/internal/app/repositories"
	"github.com/yraj/offerdesk/internal/pkg/apperrors"
	"github.com/yraj/offerdesk/internal/pkg/letter"
	"github.com/yraj/offerdesk/internal/pkg/studentid"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return w, body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name:       "validation failure",
			err:        fmt.Errorf("%w: duration must be positive", apperrors.ErrValidationFailed),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "duplicate student ID",
			err:        repositories.ErrDuplicateStudentID,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "duplicate course",
			err:        repositories.ErrCourseAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeResourceAlreadyExists,
		},
		{
			name:       "record not found",
			err:        repositories.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeResourceNotFound,
		},
		{
			name:       "malformed sequence state",
			err:        fmt.Errorf("%w: %q", studentid.ErrMalformedSequenceState, "garbage"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeMalformedSequenceState,
		},
		{
			name:       "letter generation timeout",
			err:        fmt.Errorf("%w after 30s", letter.ErrTimeout),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   dto.ErrorCodeDocumentTimeout,
		},
		{
			name:       "letter generation failure",
			err:        fmt.Errorf("%w: browser crashed", letter.ErrGeneration),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeDocumentGeneration,
		},
		{
			name:       "missing placeholder value",
			err:        fmt.Errorf("%w: studentName", letter.ErrMissingPlaceholderValue),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeDocumentGeneration,
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidCredentials,
		},
		{
			name: "unrecognized refresh token",
			err: apperrors.NewCustomError(apperrors.ErrTokenNotFound, "refresh token not recognized").
				WithDetails(map[string]interface{}{"hint": "log in again"}),
			wantStatus: http.StatusUnauthorized,
			wantCode:   dto.ErrorCodeInvalidToken,
		},
		{
			name:       "unknown error",
			err:        errors.New("something unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := respondWith(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorDuplicateStudentIDNamesField(t *testing.T) {
	_, body := respondWith(t, repositories.ErrDuplicateStudentID)
	assert.Equal(t, "studentId", body.Error.Field)
}
