package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiResponse_NullDataIsNotOmitted(t *testing.T) {
	b, err := json.Marshal(Failure(CodeUnauthorized, ""))
	require.NoError(t, err)

	assert.JSONEq(t, `{"code":401,"message":"unauthorized","data":null}`, string(b))
}

func TestSuccess_DefaultsMessage(t *testing.T) {
	env := Success([]int{1}, "")

	assert.Equal(t, CodeSuccess, env.Code)
	assert.Equal(t, MsgSuccess, env.Message)
	assert.Equal(t, []int{1}, env.Data)
}

func TestResponseCode_Message(t *testing.T) {
	tests := []struct {
		code ResponseCode
		want string
	}{
		{CodeSuccess, MsgSuccess},
		{CodeInvalidParams, MsgInvalidParams},
		{CodeUnauthorized, MsgUnauthorized},
		{CodeForbidden, MsgForbidden},
		{CodeNotFound, MsgNotFound},
		{CodeInternalError, MsgInternalError},
		{CodeDatabaseError, MsgDatabaseError},
		{CodeBusinessError, MsgBusinessError},
		{ResponseCode(999), MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Message())
		})
	}
}

func TestError_IsMatchableThroughWrapping(t *testing.T) {
	appErr := NewErrorWithData(CodeBusinessError, "quota exceeded", map[string]int{"limit": 3})
	wrapped := fmt.Errorf("outer: %w", appErr)

	var target *Error
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, ApiResponse{Code: CodeBusinessError, Message: "quota exceeded", Data: map[string]int{"limit": 3}}, target.Envelope())
}

func TestNewError_DefaultMessage(t *testing.T) {
	err := NewError(CodeNotFound, "")

	assert.Equal(t, MsgNotFound, err.Error())
	assert.Nil(t, err.Data)
}
