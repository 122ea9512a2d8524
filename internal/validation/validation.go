// Package validation checks request bodies at the HTTP boundary and reports
// problems as apperr field errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/schoolforge/sitebuilder-backend/internal/apperr"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// BindJSON decodes the request body into dst, rejecting unknown fields, and
// runs the struct's binding rules.
func BindJSON(c *gin.Context, dst any) error {
	return DecodeJSON(c.Request.Body, dst)
}

func DecodeJSON(r io.Reader, dst any) error {
	if r == nil {
		return apperr.Validation("request body is required")
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return apperr.Validation("request body must contain a single JSON object")
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return FromValidator(err)
	}
	return nil
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var sizeErr *http.MaxBytesError

	switch {
	case errors.As(err, &sizeErr):
		return apperr.TooLarge(fmt.Sprintf("request body must not exceed %d bytes", sizeErr.Limit))
	case errors.Is(err, io.EOF):
		return apperr.Validation("request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperr.Validation("request body is not valid JSON")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return apperr.Validation("request body must be a JSON object")
		}
		return apperr.Validation("invalid request body", apperr.FieldError{
			Field:   field,
			Rule:    "type",
			Message: "must be of type " + typeErr.Type.String(),
		})
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperr.Validation("invalid request body", apperr.FieldError{
			Field:   field,
			Rule:    "unknown",
			Message: "is not allowed",
		})
	default:
		return apperr.Validation("invalid request body").WithCause(err)
	}
}

// FromValidator converts validator.ValidationErrors into a validation failure.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("invalid request body").WithCause(err)
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return apperr.Validation("invalid request body", fields...)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

// Length checks a trimmed string against inclusive rune bounds. A max of zero
// means unbounded.
func Length(field, value string, min, max int) *apperr.FieldError {
	n := len([]rune(strings.TrimSpace(value)))
	switch {
	case min > 0 && n == 0:
		return &apperr.FieldError{Field: field, Rule: "required", Message: "is required"}
	case n < min:
		return &apperr.FieldError{Field: field, Rule: "min", Message: fmt.Sprintf("must be at least %d characters", min)}
	case max > 0 && n > max:
		return &apperr.FieldError{Field: field, Rule: "max", Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}

// JSONObject reports whether raw is a well-formed JSON object in which no
// object, at any depth, repeats a key.
func JSONObject(field string, raw json.RawMessage) *apperr.FieldError {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") || !json.Valid([]byte(trimmed)) {
		return &apperr.FieldError{Field: field, Rule: "object", Message: "must be a JSON object"}
	}
	if key, ok := duplicateKey(trimmed); ok {
		return &apperr.FieldError{Field: field, Rule: "unique_keys", Message: fmt.Sprintf("must not repeat the key %q", key)}
	}
	return nil
}

type jsonFrame struct {
	keys     map[string]struct{}
	wantKey  bool
	isObject bool
}

// duplicateKey walks an already validated document and returns the first key
// that appears twice in the same object.
func duplicateKey(doc string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()

	var stack []*jsonFrame
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}

		var top *jsonFrame
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		if key, ok := tok.(string); ok && top != nil && top.isObject && top.wantKey {
			if _, seen := top.keys[key]; seen {
				return key, true
			}
			top.keys[key] = struct{}{}
			top.wantKey = false
			continue
		}

		switch tok {
		case json.Delim('}'), json.Delim(']'):
			stack = stack[:len(stack)-1]
			continue
		}

		// any other token is a value; the enclosing object expects a key next
		if top != nil && top.isObject {
			top.wantKey = true
		}
		switch tok {
		case json.Delim('{'):
			stack = append(stack, &jsonFrame{keys: map[string]struct{}{}, wantKey: true, isObject: true})
		case json.Delim('['):
			stack = append(stack, &jsonFrame{})
		}
	}
}
