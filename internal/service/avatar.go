package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/fitsphere/backend/config"
)

// AvatarService stores profile pictures in S3
type AvatarService struct {
	s3Config *config.S3Config
}

// NewAvatarService creates a new AvatarService instance
func NewAvatarService(s3Config *config.S3Config) *AvatarService {
	return &AvatarService{s3Config: s3Config}
}

// Upload stores the image bytes under a fresh object key and returns the
// public URL
func (s *AvatarService) Upload(ctx context.Context, userID uuid.UUID, imageData []byte, contentType string) (string, error) {
	fileName := fmt.Sprintf("avatars/%s/%s", userID, uuid.New().String())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[AvatarService] Uploaded avatar for user %s: %s", userID, publicURL)
	return publicURL, nil
}
