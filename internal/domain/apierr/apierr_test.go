package apierr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Code
	}{
		{name: "daily limit", raw: "DAILY_LIMIT_EXCEEDED", want: CodeDailyLimitExceeded},
		{name: "file size", raw: "FILE_SIZE_EXCEEDED", want: CodeFileSizeExceeded},
		{name: "absent code", raw: "", want: CodeNone},
		{name: "unrecognized code", raw: "QUOTA_EXCEEDED", want: CodeUnknown},
		{name: "lowercase is not recognized", raw: "daily_limit_exceeded", want: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCode(tt.raw))
		})
	}
}

func TestCode_IsLimit(t *testing.T) {
	assert.True(t, CodeDailyLimitExceeded.IsLimit())
	assert.True(t, CodeFileSizeExceeded.IsLimit())
	assert.False(t, CodeNone.IsLimit())
	assert.False(t, CodeUnknown.IsLimit())
}

func TestError_Message(t *testing.T) {
	err := &Error{Message: "Limita zilnică a fost atinsă", Code: CodeDailyLimitExceeded, Status: 429}

	assert.Equal(t, "Limita zilnică a fost atinsă", err.Error())
}
