package validator

import (
	"chrono/shared/failure"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var messages = map[string]string{
	"required": "{field} is required",
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match the request body.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

// Decode reads the whole body and checks that it is a single JSON document.
// Anything unreadable or syntactically invalid is a bad request.
func Decode(r io.Reader, data *json.RawMessage) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to read request body: %w", err)) //nolint:wrapcheck
	}

	if err := json.Unmarshal(body, data); err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	return nil
}

// Bind unmarshals an already well-formed JSON document into data and
// validates it. The returned error is a plain error, not a failure: callers
// decide how a request that is valid JSON but unusable is reported.
// https://github.com/go-playground/validator
func Bind[T any](raw json.RawMessage, data *T) error {
	if err := json.Unmarshal(raw, data); err != nil {
		return err //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return errors.New(message(err))
	}

	return nil
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			msg := messages[valErr.Tag()]
			if msg != "" {
				msg = strings.ReplaceAll(msg, "{field}", valErr.Field())
				msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

				return msg
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
