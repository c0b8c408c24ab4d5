package rest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/internal/store"
	"github.com/pinspot/pinspot_api/util/values"
	"github.com/pkg/errors"
)

// h3Placeholder stands in for a real cell index derived from coordinates.
// TODO: derive the cell with uber/h3-go once the mapping layer lands.
func h3Placeholder(lat, lng *float64) *string {
	if lat == nil || lng == nil {
		return nil
	}
	index := fmt.Sprintf("h3_%v_%v", *lat, *lng)
	return &index
}

func (api *API) UploadPictureHelper(ctx context.Context, req model.UploadPictureRequest) (model.Picture, string, string, error) {
	picture := model.Picture{
		UserID:           req.UserID,
		Filename:         uuid.New().String() + filepath.Ext(req.OriginalFilename),
		OriginalFilename: req.OriginalFilename,
		MimeType:         req.MimeType,
		FileSize:         req.FileSize,
		Width:            req.Width,
		Height:           req.Height,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		H3Index:          h3Placeholder(req.Latitude, req.Longitude),
		ExifData:         req.ExifData,
	}

	created, err := api.Deps.Store.InsertPicture(ctx, picture)
	if err != nil {
		return model.Picture{}, values.Error, "Failed to create picture", err
	}

	api.Deps.Events.Publish("picture.created", map[string]interface{}{
		"picture_id": created.ID,
		"h3_index":   created.H3Index,
	})
	return created, values.Created, "Picture created successfully", nil
}

func (api *API) GetPictureFeedHelper(ctx context.Context, params model.PictureFeedParams) ([]model.Picture, string, string, error) {
	pictures, err := api.Deps.Store.ListPictures(ctx, params)
	if err != nil {
		return nil, values.Error, "Failed to fetch pictures", err
	}
	return pictures, values.Success, "Pictures fetched successfully", nil
}

// GetPictureByIDHelper hides flagged pictures from the public read path.
func (api *API) GetPictureByIDHelper(ctx context.Context, id int64) (model.Picture, string, string, error) {
	picture, err := api.Deps.Store.GetPictureByID(ctx, id)
	if err != nil {
		return model.Picture{}, errStatus(err), "Failed to fetch picture", err
	}
	if picture.IsFlagged {
		return model.Picture{}, values.NotFound, "Picture not found", errors.Wrap(store.ErrNotFound, "picture is flagged")
	}
	return picture, values.Success, "Picture fetched successfully", nil
}

func (api *API) CreateCommentHelper(ctx context.Context, req model.CreateCommentRequest) (model.Comment, string, string, error) {
	// The picture must exist before the comment row and counter bump.
	if _, err := api.Deps.Store.GetPictureByID(ctx, req.PictureID); err != nil {
		return model.Comment{}, errStatus(err), "Picture not found", err
	}

	comment, err := api.Deps.Store.CreateComment(ctx, model.Comment{
		PictureID: req.PictureID,
		UserID:    req.UserID,
		Content:   req.Content,
	})
	if err != nil {
		return model.Comment{}, errStatus(err), "Failed to create comment", err
	}

	api.Deps.Events.Publish("comment.created", map[string]interface{}{
		"comment_id": comment.ID,
		"picture_id": comment.PictureID,
	})
	return comment, values.Created, "Comment created successfully", nil
}

func (api *API) GetCommentsHelper(ctx context.Context, pictureID int64, limit, offset int) ([]model.Comment, string, string, error) {
	comments, err := api.Deps.Store.ListComments(ctx, pictureID, limit, offset)
	if err != nil {
		return nil, values.Error, "Failed to fetch comments", err
	}
	return comments, values.Success, "Comments fetched successfully", nil
}
