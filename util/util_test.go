package util

import (
	"net/http"
	"testing"

	"github.com/pinspot/pinspot_api/internal/model"
	"github.com/pinspot/pinspot_api/util/values"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{values.Success, http.StatusOK},
		{values.Created, http.StatusCreated},
		{values.Error, http.StatusInternalServerError},
		{values.BadRequestBody, http.StatusBadRequest},
		{values.NotFound, http.StatusNotFound},
		{values.NotAuthorised, http.StatusUnauthorized},
		{values.TokenExpired, http.StatusUnauthorized},
		{values.Conflict, http.StatusConflict},
		{values.NotAllowed, http.StatusForbidden},
		{"anything-else", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.status))
		})
	}
}

func TestValidateStructEnums(t *testing.T) {
	ok := model.CreateVoteRequest{VoteType: "upvote"}
	assert.NoError(t, ValidateStruct(ok))

	bad := model.CreateVoteRequest{VoteType: "sideways"}
	assert.Error(t, ValidateStruct(bad))

	report := model.CreateReportRequest{Reason: "spam"}
	assert.NoError(t, ValidateStruct(report))

	report.Reason = "because"
	assert.Error(t, ValidateStruct(report))
}

func TestValidateCoordinates(t *testing.T) {
	lat, lng := 35.18, 33.38
	req := model.UploadPictureRequest{
		OriginalFilename: "x.jpg", MimeType: "image/jpeg", FileSize: 100,
		Latitude: &lat, Longitude: &lng,
	}
	assert.NoError(t, ValidateStruct(req))

	badLat := 95.0
	req.Latitude = &badLat
	assert.Error(t, ValidateStruct(req))
}
