package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
)

type signupBody struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	FullName *string `json:"fullName"`
}

func decode(t *testing.T, body string) (*signupBody, *apperr.Error) {
	t.Helper()
	var dst signupBody
	err := DecodeJSON(strings.NewReader(body), &dst)
	if err == nil {
		return &dst, nil
	}
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	return nil, ae
}

func TestDecodeJSON_Valid(t *testing.T) {
	got, verr := decode(t, `{"email":"a@x.com","password":"secret1","fullName":"Ada"}`)
	require.Nil(t, verr)
	assert.Equal(t, "a@x.com", got.Email)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "Ada", *got.FullName)
}

func TestDecodeJSON_Failures(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantRule  string
	}{
		{"unknown field", `{"email":"a@x.com","password":"secret1","role":"admin"}`, "role", "unknown"},
		{"missing email", `{"password":"secret1"}`, "email", "required"},
		{"bad email", `{"email":"nope","password":"secret1"}`, "email", "email"},
		{"short password", `{"email":"a@x.com","password":"123"}`, "password", "min"},
		{"wrong type", `{"email":42,"password":"secret1"}`, "email", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verr := decode(t, tt.body)
			require.NotNil(t, verr)
			assert.Equal(t, apperr.KindValidation, verr.Kind)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
			assert.Equal(t, tt.wantRule, verr.Fields[0].Rule)
		})
	}
}

func TestDecodeJSON_BodyShape(t *testing.T) {
	for _, body := range []string{"", "{not json", "[1,2]", `{"email":"a@x.com","password":"secret1"} {}`} {
		_, verr := decode(t, body)
		require.NotNil(t, verr, "body %q", body)
		assert.Equal(t, apperr.KindValidation, verr.Kind)
	}
}

func TestLength(t *testing.T) {
	assert.Nil(t, Length("projectName", "My School", 3, 100))
	assert.Equal(t, "required", Length("projectName", "   ", 3, 100).Rule)
	assert.Equal(t, "min", Length("projectName", "ab", 3, 100).Rule)
	assert.Equal(t, "max", Length("projectName", strings.Repeat("x", 101), 3, 100).Rule)
	assert.Nil(t, Length("schoolType", "", 0, 50))
}

func TestJSONObject(t *testing.T) {
	assert.Nil(t, JSONObject("configJson", json.RawMessage(` {"pages":[]}`)))
	for _, raw := range []string{`[]`, `null`, `"x"`, `{"a":`} {
		fe := JSONObject("configJson", json.RawMessage(raw))
		require.NotNil(t, fe, raw)
		assert.Equal(t, "object", fe.Rule)
	}
}

func TestJSONObject_DuplicateKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
	}{
		{"top level", `{"pages":[],"pages":{"x":1}}`, "pages"},
		{"nested object", `{"theme":{"color":"red","color":"blue"}}`, "color"},
		{"object inside array", `{"pages":[{"id":1},{"id":2,"id":3}]}`, "id"},
		{"escaped spelling", `{"a":1,"\u0061":2}`, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := JSONObject("configJson", json.RawMessage(tt.raw))
			require.NotNil(t, fe)
			assert.Equal(t, "configJson", fe.Field)
			assert.Equal(t, "unique_keys", fe.Rule)
			assert.Contains(t, fe.Message, `"`+tt.key+`"`)
		})
	}

	for _, raw := range []string{
		`{"pages":[{"id":1},{"id":2}],"theme":{"id":3}}`,
		`{"a":{"a":{"a":1}},"b":["a","a"]}`,
		`{"x":[[{"k":1}],[{"k":2}]],"k":0}`,
	} {
		assert.Nil(t, JSONObject("configJson", json.RawMessage(raw)), raw)
	}
}
