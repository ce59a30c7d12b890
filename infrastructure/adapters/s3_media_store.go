package adapters

import (
	"bytes"
	"context"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/config"
	"generate-reel-api/domain"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

type s3MediaStore struct {
	ContentFetcher
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3MediaStore(s3Svc *s3.S3, s3Config *config.S3Config, contentFetcher ContentFetcher) outbound.MediaStorePort {
	return &s3MediaStore{
		ContentFetcher: contentFetcher,
		s3Svc:          s3Svc,
		s3Config:       s3Config,
	}
}

func (s *s3MediaStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	payload, err := io.ReadAll(body)
	if err != nil {
		return &domain.StorageError{Op: "put", Key: key, Err: err}
	}

	putInput := &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("key", key).
			Msg("Failed to upload object to S3")
		return &domain.StorageError{Op: "put", Key: key, Err: err}
	}

	log.Debug().
		Str("key", key).
		Msg("Successfully uploaded object to S3")

	return nil
}

// UploadFromRef resolves ref, either an http(s) URL or a local file
// path, and uploads its content under key.
func (s *s3MediaStore) UploadFromRef(ctx context.Context, key string, ref string, contentType string) error {
	var payload []byte

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, err := http.NewRequestWithContext(ctx, "GET", ref, nil)
		if err != nil {
			return &domain.StorageError{Op: "fetch", Key: key, Err: err}
		}
		payload, err = s.FetchContent(req)
		if err != nil {
			return &domain.StorageError{Op: "fetch", Key: key, Err: err}
		}
	} else {
		var err error
		payload, err = os.ReadFile(ref)
		if err != nil {
			return &domain.StorageError{Op: "read", Key: key, Err: err}
		}
		defer func() {
			if err := os.Remove(ref); err != nil {
				log.Error().Err(err).Str("file", ref).Msg("Failed to remove local file after upload")
			}
		}()
	}

	return s.Upload(ctx, key, bytes.NewReader(payload), contentType)
}

func (s *s3MediaStore) List(ctx context.Context, params outbound.ListObjectsParams) (*outbound.ListObjectsResult, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.s3Config.BucketName),
		Prefix:  aws.String(params.Prefix),
		MaxKeys: aws.Int64(params.Limit),
	}
	if params.Cursor != "" {
		input.ContinuationToken = aws.String(params.Cursor)
	}

	output, err := s.s3Svc.ListObjectsV2WithContext(ctx, input)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("prefix", params.Prefix).
			Msg("Failed to list objects in S3")
		return nil, &domain.StorageError{Op: "list", Err: err}
	}

	objects := make([]domain.StoredObject, 0, len(output.Contents))
	for _, item := range output.Contents {
		objects = append(objects, domain.StoredObject{
			Key:          aws.StringValue(item.Key),
			LastModified: aws.TimeValue(item.LastModified),
			Size:         aws.Int64Value(item.Size),
		})
	}

	return &outbound.ListObjectsResult{
		Objects:    objects,
		NextCursor: aws.StringValue(output.NextContinuationToken),
	}, nil
}

func (s *s3MediaStore) PresignedURL(key string, expires time.Duration) (string, error) {
	req, _ := s.s3Svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expires)
	if err != nil {
		log.Error().
			Err(err).
			Str("key", key).
			Msg("Failed to presign object URL")
		return "", &domain.StorageError{Op: "presign", Key: key, Err: err}
	}

	return url, nil
}
