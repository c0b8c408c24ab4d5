package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/util"
	"github.com/pinspot/pinspot_api/util/tracing"
	"github.com/pinspot/pinspot_api/util/values"
)

func (api *API) ReportRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireDevice)
		r.Method(http.MethodPost, "/", Handler(api.FileReport))
	})

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireDevice)
		r.Use(api.RequireAdmin)
		r.Method(http.MethodGet, "/", Handler(api.GetReports))
		r.Method(http.MethodPatch, "/{reportID}/status", Handler(api.ResolveReport))
	})

	return mux
}

// FileReport records a complaint against a picture or comment.
func (api *API) FileReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	ref, err := model.NewTargetRef(req.PictureID, req.CommentID)
	if err != nil {
		return respondWithError(err, err.Error(), values.Unprocessable, &tc)
	}

	reporterID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	report, err := api.Deps.Moderation.File(r.Context(), reporterID, ref, req.Reason, req.Description)
	if err != nil {
		return respondWithError(err, "failed to file report", errStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Report filed successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       report,
	}
}

// GetReports returns the full report queue for admin review.
func (api *API) GetReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reports, err := api.Deps.Store.ListReports(r.Context())
	if err != nil {
		return respondWithError(err, "failed to fetch reports", values.Error, &tc)
	}
	if reports == nil {
		reports = []model.Report{}
	}

	return &ServerResponse{
		Message:    "Reports retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reports,
	}
}

// ResolveReport moves a report to reviewed or dismissed.
func (api *API) ResolveReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	reportID, err := strconv.ParseInt(chi.URLParam(r, "reportID"), 10, 64)
	if err != nil {
		return respondWithError(err, "invalid report ID", values.BadRequestBody, &tc)
	}

	var req model.UpdateReportStatusRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	report, err := api.Deps.Moderation.Resolve(r.Context(), reportID, req.Status, req.AdminNotes)
	if err != nil {
		return respondWithError(err, "failed to resolve report", errStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Report resolved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       report,
	}
}
