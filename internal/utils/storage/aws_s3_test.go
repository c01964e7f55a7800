package storage

import (
	"mime/multipart"
	"testing"

	"Recipe-Book/domain"

	"github.com/stretchr/testify/assert"
)

func TestUploadWithoutBucketIsInvalidInput(t *testing.T) {
	store := &awsS3{}

	_, err := store.UploadFile("pancakes", &multipart.FileHeader{Filename: "pancakes.jpg", Size: 10}, "recipes", AllowImage...)
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "", store.GetObjectKeyFromLink("https://bucket.s3.region.amazonaws.com/recipes/x.jpg"))
}

func TestContains(t *testing.T) {
	assert.True(t, contains(AllowImage, ".png"))
	assert.False(t, contains(AllowImage, ".gif"))
}
