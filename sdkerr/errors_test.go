package sdkerr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "ConfigurationError", Configuration.String())
	assert.Equal(t, "NetworkError", Network.String())
	assert.Equal(t, "ParseError", Parse.String())
	assert.Equal(t, "ApiError", API.String())
	assert.Equal(t, "UnknownError", Kind(0).String())
}

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "api error with request id",
			err:      NewAPI("FailedOperation.SignatureIncorrectOrUnapproved", "signature not approved", "req-1"),
			expected: "[TencentCloudSDKError] Kind=ApiError, Code=FailedOperation.SignatureIncorrectOrUnapproved, Message=signature not approved, RequestId=req-1",
		},
		{
			name:     "configuration error with cause",
			err:      NewConfiguration("invalid credential", fmt.Errorf("secret id is empty")),
			expected: "[TencentCloudSDKError] Kind=ConfigurationError, Message=invalid credential: secret id is empty",
		},
		{
			name: "network error with status",
			err: &Error{
				Kind:       Network,
				Message:    "unexpected HTTP status",
				StatusCode: http.StatusBadGateway,
			},
			expected: "[TencentCloudSDKError] Kind=NetworkError, Message=unexpected HTTP status, Status=502 Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestKindHelpersThroughWrapping(t *testing.T) {
	apiErr := NewAPI("UnauthorizedOperation.SmsSdkAppIdVerifyFail", "app id verify fail", "req-2")
	wrapped := errors.Wrap(apiErr, "send sms")

	assert.True(t, IsAPI(wrapped))
	assert.False(t, IsNetwork(wrapped))
	assert.Equal(t, "UnauthorizedOperation.SmsSdkAppIdVerifyFail", Code(wrapped))
	assert.True(t, HasCode(wrapped, "UnauthorizedOperation.SmsSdkAppIdVerifyFail"))
	assert.False(t, HasCode(wrapped, ""))

	assert.True(t, IsParse(NewParse("bad body", io.ErrUnexpectedEOF)))
	assert.True(t, IsConfiguration(NewConfiguration("empty", nil)))
	assert.Equal(t, Kind(0), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, "", Code(NewNetwork("dial", nil)))
}

func TestTimeout(t *testing.T) {
	assert.True(t, NewNetwork("deadline", context.DeadlineExceeded).Timeout())
	assert.True(t, NewNetwork("wrapped deadline", errors.Wrap(context.DeadlineExceeded, "post")).Timeout())
	assert.False(t, NewNetwork("canceled", context.Canceled).Timeout())
	assert.False(t, NewParse("deadline", context.DeadlineExceeded).Timeout())
	assert.False(t, NewNetwork("no cause", nil).Timeout())
}

func TestUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewParse("truncated", cause)
	require.ErrorIs(t, err, cause)
}
