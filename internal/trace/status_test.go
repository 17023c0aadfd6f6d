package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusWireNames(t *testing.T) {
	tests := []struct {
		status SpanStatus
		name   string
	}{
		{StatusOk, "ok"},
		{StatusCancelled, "cancelled"},
		{StatusInvalidArgument, "invalid_argument"},
		{StatusDeadlineExceeded, "deadline_exceeded"},
		{StatusNotFound, "not_found"},
		{StatusAlreadyExists, "already_exists"},
		{StatusPermissionDenied, "permission_denied"},
		{StatusResourceExhausted, "resource_exhausted"},
		{StatusFailedPrecondition, "failed_precondition"},
		{StatusAborted, "aborted"},
		{StatusOutOfRange, "out_of_range"},
		{StatusUnimplemented, "unimplemented"},
		{StatusInternalError, "internal_error"},
		{StatusUnavailable, "unavailable"},
		{StatusDataLoss, "data_loss"},
		{StatusUnauthenticated, "unauthenticated"},
		{StatusUnknownError, "unknown_error"},
		{StatusUnknown, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.status.String())
	}
}

func TestStatusUndefinedHasNoWireName(t *testing.T) {
	assert.Equal(t, "", StatusUndefined.String())
}

func TestStatusFromHTTP(t *testing.T) {
	t.Run("success range", func(t *testing.T) {
		for code := 200; code <= 299; code++ {
			assert.Equal(t, StatusOk, StatusFromHTTP(code), "code %d", code)
		}
	})

	t.Run("dedicated mappings", func(t *testing.T) {
		tests := []struct {
			code   int
			status SpanStatus
		}{
			{400, StatusInvalidArgument},
			{401, StatusUnauthenticated},
			{403, StatusPermissionDenied},
			{404, StatusNotFound},
			{409, StatusAlreadyExists},
			{413, StatusFailedPrecondition},
			{429, StatusResourceExhausted},
			{499, StatusCancelled},
			{500, StatusInternalError},
			{501, StatusUnimplemented},
			{503, StatusUnavailable},
			{504, StatusDeadlineExceeded},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.status, StatusFromHTTP(tt.code), "code %d", tt.code)
		}
	})

	t.Run("everything else falls through", func(t *testing.T) {
		for _, code := range []int{-1, 0, 100, 199, 301, 302, 402, 410, 418, 502, 505, 600, 9999} {
			assert.Equal(t, StatusUnknownError, StatusFromHTTP(code), "code %d", code)
		}
	})
}
