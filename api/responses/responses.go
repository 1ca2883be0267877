package responses

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Nakshatra2405/sales-ledger-backend/pkg/errors"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/logger"
	"github.com/Nakshatra2405/sales-ledger-backend/pkg/types"
)

// WriteSuccess writes a 200 envelope with the provided payload.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, types.SuccessEnvelope{Data: data})
}

// WriteCreated writes a 201 envelope with the provided payload.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, types.SuccessEnvelope{Data: data})
}

// WriteError maps the error onto the taxonomy's HTTP status and public
// message. Internal errors are logged with their cause and never leak
// details to the caller.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	appErr := errors.As(err)
	if appErr == nil {
		appErr = errors.Wrap(errors.CodeInternal, err, "unexpected error")
	}
	meta := errors.MetadataFor(appErr.Code())

	message := appErr.Message()
	var details any
	if meta.DetailsAllowed {
		details = appErr.Details()
	} else {
		message = meta.PublicMessage
	}

	if meta.HTTPStatus >= http.StatusInternalServerError && logg != nil {
		logg.Error(ctx, "request failed", err)
	}

	WriteJSON(w, meta.HTTPStatus, types.ErrorEnvelope{
		Error: types.APIError{
			Code:    string(appErr.Code()),
			Message: message,
			Details: details,
		},
	})
}

// WriteJSON writes an arbitrary payload with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
