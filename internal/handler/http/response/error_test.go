package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/attendance"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/leave"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/meeting"
	"github.com/hrpayroll/attendance-backend-go/internal/domain/workflow"
	"github.com/hrpayroll/attendance-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"forbidden", workflow.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"invalid transition", workflow.ErrInvalidTransition, http.StatusConflict, "CONFLICT"},
		{"duplicate mark", attendance.ErrDuplicateMark, http.StatusConflict, "CONFLICT"},
		{"leave not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"meeting not found", meeting.ErrMeetingRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid range", leave.ErrInvalidRange, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"wrapped sentinel", errors.Join(errors.New("ctx"), workflow.ErrInvalidTransition), http.StatusConflict, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "reason", Message: "reason is required"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "reason is required", body.Error.Details["reason"])
}
