package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosisn/onlineshop/models"
)

func TestCreateReviewRequestValidate(t *testing.T) {
	rating := func(v uint) *uint { return &v }

	tests := []struct {
		name    string
		rating  *uint
		wantErr bool
	}{
		{name: "absent rating defaults", rating: nil},
		{name: "minimum rating", rating: rating(1)},
		{name: "maximum rating", rating: rating(5)},
		{name: "zero rating", rating: rating(0), wantErr: true},
		{name: "six rating", rating: rating(6), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateReviewRequest{UserID: 1, Rating: tt.rating}
			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, models.InvalidRating, verr.Kind)
			assert.Equal(t, "rating", verr.Field)
		})
	}
}

func TestCreateReviewRequestRatingOrDefault(t *testing.T) {
	req := CreateReviewRequest{UserID: 1}
	assert.Equal(t, uint(5), req.RatingOrDefault())

	three := uint(3)
	req.Rating = &three
	assert.Equal(t, uint(3), req.RatingOrDefault())
}

func TestUpdateReviewRequestValidate(t *testing.T) {
	six := uint(6)
	req := UpdateReviewRequest{Rating: &six}
	var verr *models.ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, models.InvalidRating, verr.Kind)

	one := uint(1)
	req.Rating = &one
	assert.NoError(t, req.Validate())

	req.Rating = nil
	assert.NoError(t, req.Validate())
}
