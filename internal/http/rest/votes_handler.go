package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/util"
	"github.com/pinspot/pinspot_api/util/tracing"
	"github.com/pinspot/pinspot_api/util/values"
)

func (api *API) VoteRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireDevice)
		r.Method(http.MethodPost, "/", Handler(api.CastVote))
	})

	return mux
}

// CastVote records or replaces the caller's vote on a picture or comment.
func (api *API) CastVote(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateVoteRequest
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

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	vote, err := api.Deps.Moderation.Cast(r.Context(), userID, ref, req.VoteType)
	if err != nil {
		return respondWithError(err, "failed to cast vote", errStatus(err), &tc)
	}

	return &ServerResponse{
		Message:    "Vote recorded successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       vote,
	}
}
