package controller

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyHas(t *testing.T) {
	empty := ""
	text := "text"
	var nilPointer *string

	cases := []struct {
		value    any
		expected bool
	}{
		{value: nil, expected: false},
		{value: false, expected: false},
		{value: true, expected: true},
		{value: "", expected: false},
		{value: "any_name", expected: true},
		{value: float64(0), expected: false},
		{value: math.NaN(), expected: false},
		{value: float64(1.5), expected: true},
		{value: 0, expected: false},
		{value: -1, expected: true},
		{value: uint8(0), expected: false},
		{value: nilPointer, expected: false},
		{value: &empty, expected: false},
		{value: &text, expected: true},
		{value: map[string]any{}, expected: true},
		{value: []any{}, expected: true},
	}

	for _, testcase := range cases {
		body := Body{"field": testcase.value}
		assert.Equal(t, testcase.expected, body.Has("field"), "value: %#v", testcase.value)
	}

	assert.False(t, Body{}.Has("field"))
	assert.False(t, Body(nil).Has("field"))
}

func TestBodyString(t *testing.T) {
	body := Body{"email": "any_email@mail.com", "age": float64(3)}

	email, ok := body.String("email")
	assert.True(t, ok)
	assert.Equal(t, "any_email@mail.com", email)

	_, ok = body.String("age")
	assert.False(t, ok)

	_, ok = body.String("missing")
	assert.False(t, ok)
}

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	missing := NewMissingParamError("name")
	assert.Equal("Missing param: name", missing.Error())
	assert.Equal(KindMissingParam, missing.Kind)
	assert.Equal("name", missing.Param)

	invalid := NewInvalidParamError("email")
	assert.Equal("Invalid param: email", invalid.Error())
	assert.Equal(KindInvalidParam, invalid.Kind)

	server := NewServerError()
	assert.Equal("Internal server error", server.Error())
	assert.Empty(server.Param)

	assert.True(errors.Is(missing, NewMissingParamError("name")))
	assert.False(errors.Is(missing, NewMissingParamError("email")))
	assert.False(errors.Is(missing, NewInvalidParamError("name")))
	assert.True(errors.Is(server, NewServerError()))
}

func TestErrorJSON(t *testing.T) {
	content, err := json.Marshal(NewMissingParamError("passwordConfirmation"))
	require.Nil(t, err)
	require.JSONEq(
		t,
		`{"kind": "MissingParamError", "param": "passwordConfirmation", "error": "Missing param: passwordConfirmation"}`,
		string(content),
	)

	content, err = json.Marshal(NewServerError())
	require.Nil(t, err)
	require.JSONEq(t, `{"kind": "ServerError", "error": "Internal server error"}`, string(content))
}

func TestResponses(t *testing.T) {
	assert := assert.New(t)

	ok := OK(SuccessBody{Message: "done"})
	assert.Equal(http.StatusOK, ok.StatusCode)
	assert.Equal(SuccessBody{Message: "done"}, ok.Body)

	badRequest := BadRequest(NewInvalidParamError("email"))
	assert.Equal(http.StatusBadRequest, badRequest.StatusCode)
	assert.Equal(NewInvalidParamError("email"), badRequest.Body)

	internal := InternalServerError()
	assert.Equal(http.StatusInternalServerError, internal.StatusCode)
	assert.Equal(NewServerError(), internal.Body)
}
