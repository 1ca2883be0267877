package validators

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSONBody decodes the request body into dst and runs struct
// validation. Both failure modes come back as validation errors carrying
// field-level details.
func DecodeJSONBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(errors.CodeValidation, err, "malformed JSON body").
			WithDetails(map[string]string{"body": err.Error()})
	}

	if err := validate.Struct(dst); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(errors.CodeValidation, err, "invalid request body")
		}
		details := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			details[fe.Field()] = fe.Tag()
		}
		return errors.Wrap(errors.CodeValidation, err, "invalid request body").
			WithDetails(details)
	}
	return nil
}

// ParseID parses a positive integer path or query parameter.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New(errors.CodeValidation, "invalid id").
			WithDetails(map[string]string{"id": raw})
	}
	return uint(id), nil
}

// ParseQueryInt parses an optional integer query parameter, returning the
// fallback when the parameter is absent.
func ParseQueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.CodeValidation, "invalid query parameter").
			WithDetails(map[string]string{name: raw})
	}
	return value, nil
}
