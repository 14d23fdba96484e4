package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// validate is shared by all handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// statusForCode maps domain error codes to HTTP statuses.
var statusForCode = map[string]int{
	model.ErrCodeValidation:      http.StatusBadRequest,
	model.ErrCodeUnauthenticated: http.StatusUnauthorized,
	model.ErrCodeNotFound:        http.StatusNotFound,
	model.ErrCodeAlreadyExists:   http.StatusConflict,
	model.ErrCodeEmptyCart:       http.StatusBadRequest,
	model.ErrCodeServerError:     http.StatusInternalServerError,
}

// writeData writes a success envelope with the given status code.
func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(model.APIResponse{OK: true, Data: data}); err != nil {
		// Response already committed; nothing useful left to do.
		return
	}
}

// writeError writes an error envelope with the given status code.
func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		OK:    false,
		Error: &model.APIError{Code: code, Message: message, Details: details},
	})
}

// writeDomainError maps a service error onto the envelope. Anything that is
// not a DomainError is normalized to SERVER_ERROR without leaking internals.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status, ok := statusForCode[domainErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		logger.Debug().
			Str("code", domainErr.Code).
			Int("status", status).
			Msg(domainErr.Message)
		writeError(w, status, domainErr.Code, domainErr.Message, nil)
		return
	}

	logger.Error().Err(err).Msg("unexpected handler error")
	writeError(w, http.StatusInternalServerError, model.ErrCodeServerError, "Something went wrong", nil)
}

// decodeAndValidate decodes the JSON body into dst and runs struct validation.
// Failures come back as VALIDATION_ERROR domain errors with field details.
func decodeAndValidate(r *http.Request, dst any) (details any, err error) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "Invalid JSON body")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			issues := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				issues[i] = fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag())
			}
			return issues, model.NewDomainError(model.ErrCodeValidation, "Invalid request body")
		}
		return nil, model.NewDomainError(model.ErrCodeValidation, "Invalid request body")
	}

	return nil, nil
}

// queryInt parses an integer query parameter, falling back to a default.
func queryInt(r *http.Request, key string, defaultValue int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
