package config

import (
	"generate-reel-api/domain"
	"os"
)

type S3Config struct {
	BucketName string
	Region     string
}

func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("BUCKET_NAME")
	if bucketName == "" {
		return nil, &domain.ConfigError{Name: "BUCKET_NAME"}
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, &domain.ConfigError{Name: "REGION"}
	}

	return &S3Config{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
