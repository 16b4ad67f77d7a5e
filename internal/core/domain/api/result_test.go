package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodrisk/forms-data/go/internal/core/domain/api"
)

func TestApplicationError_PassesErrorsThrough(t *testing.T) {
	res := api.ApplicationError(http.StatusForbidden, []byte(`{"errors":[{"errorCode":"FORBIDDEN","message":"nope"}]}`))
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusForbidden, res.Status)
	first, ok := res.FirstError()
	require.True(t, ok)
	assert.Equal(t, "FORBIDDEN", first.ErrorCode)
	assert.Nil(t, res.ValidationErrors)
}

func TestApplicationError_KeepsErrorPayloadVerbatim(t *testing.T) {
	cases := map[string]string{
		"extra fields": `[{"errorCode":"E1","message":"m","details":{"x":1}}]`,
		"object":       `{"email":"taken"}`,
		"string":       `"boom"`,
	}
	for name, payload := range cases {
		res := api.ApplicationError(http.StatusConflict, []byte(`{"errors":`+payload+`}`))
		assert.JSONEq(t, payload, string(res.Errors), name)
		assert.Nil(t, res.ValidationErrors, name)
	}
}

func TestFirstError_OnlyForErrorLists(t *testing.T) {
	res := api.ApplicationError(http.StatusConflict, []byte(`{"errors":[{"errorCode":"E1","message":"m","details":{"x":1}}]}`))
	first, ok := res.FirstError()
	require.True(t, ok)
	assert.Equal(t, api.Error{ErrorCode: "E1", Message: "m"}, first)

	res = api.ApplicationError(http.StatusConflict, []byte(`{"errors":{"email":"taken"}}`))
	_, ok = res.FirstError()
	assert.False(t, ok)
}

func TestApplicationError_PassesValidationErrorsVerbatim(t *testing.T) {
	body := `{"validationErrors":[{"field":"email","message":"taken"}]}`
	res := api.ApplicationError(http.StatusBadRequest, []byte(body))
	assert.JSONEq(t, `[{"field":"email","message":"taken"}]`, string(res.ValidationErrors))
	assert.Empty(t, res.Errors)
}

func TestApplicationError_UnknownWhenBodyHasNoErrors(t *testing.T) {
	for _, body := range []string{``, `{}`, `<html>oops</html>`, `{"errors":null}`} {
		res := api.ApplicationError(http.StatusBadGateway, []byte(body))
		first, ok := res.FirstError()
		require.True(t, ok, "body %q", body)
		assert.Equal(t, api.ErrorCodeUnknown, first.ErrorCode)
	}
}

func TestNetworkError(t *testing.T) {
	res := api.NetworkError("dial tcp: refused")
	assert.True(t, res.IsNetworkError())
	assert.Equal(t, 0, res.Status)
	first, _ := res.FirstError()
	assert.Equal(t, api.ErrorCodeNetwork, first.ErrorCode)
	assert.False(t, api.Succeeded(http.StatusOK, nil).IsNetworkError())
}

func TestRequestOptions_MethodOrDefault(t *testing.T) {
	assert.Equal(t, http.MethodGet, api.RequestOptions{}.MethodOrDefault())
	assert.Equal(t, http.MethodPost, api.RequestOptions{Method: http.MethodPost}.MethodOrDefault())
}
