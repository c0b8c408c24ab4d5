package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pinspot/pinspot_api/util"
	"github.com/pinspot/pinspot_api/util/tracing"
	"github.com/pinspot/pinspot_api/util/values"
)

func (api *API) UserRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/device/{deviceID}", Handler(api.GetUserByDevice))

	return mux
}

func (api *API) GetUserByDevice(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	deviceID := chi.URLParam(r, "deviceID")
	if deviceID == "" {
		return respondWithError(nil, "missing device ID", values.BadRequestBody, &tc)
	}

	user, err := api.Deps.Store.GetUserByDevice(r.Context(), deviceID)
	if err != nil {
		return respondWithError(err, "failed to get user", errStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "User retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       user,
	}
}
