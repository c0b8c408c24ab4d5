package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/internal/moderation"
	"github.com/pinspot/pinspot_api/internal/store"
	"github.com/pinspot/pinspot_api/util"
	"github.com/pinspot/pinspot_api/util/tracing"
	"github.com/pinspot/pinspot_api/util/values"
	"go.uber.org/zap"
)

type ServerResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	if err != nil {
		zap.S().Errorw(message, "error", err)
	}
	resp := ServerResponse{
		Status:  status,
		Message: message,
	}
	body, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, body, util.StatusCode(status))
}

func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		if tc != nil {
			zap.S().Errorw(message, "error", err, "request_id", tc.RequestID, "request_source", tc.RequestSource)
		} else {
			zap.S().Errorw(message, "error", err)
		}
	}
	return &ServerResponse{
		Status:     status,
		Message:    message,
		StatusCode: util.StatusCode(status),
	}
}

// errStatus maps domain errors onto response status strings.
func errStatus(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return values.NotFound
	case errors.Is(err, model.ErrTargetMismatch), errors.Is(err, moderation.ErrInvalidStatus):
		return values.Unprocessable
	case errors.Is(err, store.ErrConflict):
		return values.Conflict
	default:
		return values.Error
	}
}
