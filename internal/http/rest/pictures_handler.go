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

func (api *API) PictureRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireDevice)
		r.Method(http.MethodPost, "/", Handler(api.UploadPicture))
		r.Method(http.MethodPost, "/{pictureID}/comments", Handler(api.CommentOnPicture))
	})

	mux.Method(http.MethodGet, "/", Handler(api.GetPictureFeed))
	mux.Method(http.MethodGet, "/{pictureID}", Handler(api.GetPictureByID))
	mux.Method(http.MethodGet, "/{pictureID}/comments", Handler(api.GetComments))

	return mux
}

func (api *API) UploadPicture(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.UploadPictureRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}
	req.UserID = userID

	picture, status, message, err := api.UploadPictureHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       picture,
	}
}

func (api *API) GetPictureFeed(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = api.Config.FeedPageSize
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	params := model.PictureFeedParams{
		H3Index: r.URL.Query().Get("h3_index"),
		Limit:   limit,
		Offset:  offset,
	}

	pictures, status, message, err := api.GetPictureFeedHelper(r.Context(), params)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	if pictures == nil {
		pictures = []model.Picture{}
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       pictures,
	}
}

func (api *API) GetPictureByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pictureID, err := strconv.ParseInt(chi.URLParam(r, "pictureID"), 10, 64)
	if err != nil {
		return respondWithError(err, "invalid picture ID", values.BadRequestBody, &tc)
	}

	picture, status, message, err := api.GetPictureByIDHelper(r.Context(), pictureID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       picture,
	}
}

func (api *API) CommentOnPicture(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pictureID, err := strconv.ParseInt(chi.URLParam(r, "pictureID"), 10, 64)
	if err != nil {
		return respondWithError(err, "invalid picture ID", values.BadRequestBody, &tc)
	}

	var req model.CreateCommentRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	req.PictureID = pictureID

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}
	req.UserID = userID

	comment, status, message, err := api.CreateCommentHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comment,
	}
}

func (api *API) GetComments(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	pictureID, err := strconv.ParseInt(chi.URLParam(r, "pictureID"), 10, 64)
	if err != nil {
		return respondWithError(err, "invalid picture ID", values.BadRequestBody, &tc)
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = api.Config.FeedPageSize
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	comments, status, message, err := api.GetCommentsHelper(r.Context(), pictureID, limit, offset)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       comments,
	}
}
