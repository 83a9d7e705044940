package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"verse-audio-api/application/ports/outbound"
	"verse-audio-api/config"
)

type s3AudioStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
	logger   outbound.LoggerPort
}

func NewS3AudioStore(s3Svc *s3.S3, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.AudioStorePort {
	return &s3AudioStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
		logger:   logger,
	}
}

func (s *s3AudioStore) Save(ctx context.Context, path string, audio []byte) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(path),
		Body:          bytes.NewReader(audio),
		ContentLength: aws.Int64(int64(len(audio))),
		ContentType:   aws.String("audio/mpeg"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload audio to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"path":   path,
		})
		return "", err
	}

	url := s.URL(path)
	s.logger.DebugWithFields("Uploaded audio to S3", map[string]interface{}{
		"url":  url,
		"size": len(audio),
	})

	return url, nil
}

func (s *s3AudioStore) Fetch(ctx context.Context, path string) ([]byte, error) {
	getInput := &s3.GetObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(path),
	}

	out, err := s.s3Svc.GetObjectWithContext(ctx, getInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to fetch audio from S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"path":   path,
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		closeErr := body.Close()
		if closeErr != nil {
			s.logger.Error(closeErr, "Failed to close the S3 object body")
		}
	}(out.Body)

	audio, err := io.ReadAll(out.Body)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to read the S3 object body", map[string]interface{}{
			"path": path,
		})
		return nil, err
	}

	return audio, nil
}

func (s *s3AudioStore) URL(path string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, path)
}
