package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AvatarService issues presigned S3 URLs for profile avatar uploads and reads
type AvatarService struct {
	Client *s3.Client
	Bucket string
}

// InitializeS3Client initializes the S3 client
func InitializeS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

// GenerateUploadURL generates a presigned URL for uploading an avatar
func (as *AvatarService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "avatars/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(as.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(as.Client)
	presignedURL, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading an avatar
func (as *AvatarService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(as.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(as.Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
