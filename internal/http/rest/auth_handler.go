package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/util"
	"github.com/pinspot/pinspot_api/util/tracing"
	"github.com/pinspot/pinspot_api/util/values"
)

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/device", Handler(api.RegisterDevice))

	return mux
}

// RegisterDevice is the anonymous sign-in: one user per device identifier.
func (api *API) RegisterDevice(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterDeviceRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	resp, status, message, err := api.RegisterDeviceHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       resp,
	}
}
