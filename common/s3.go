package common

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"credcheck/types"
)

// S3Config contains minimal configuration for creating an S3 client.
// Values are optional and fall back to the standard AWS config/credential chain.
type S3Config struct {
	// Region to use for requests, e.g. "us-east-1". If empty, AWS defaults apply.
	Region string
	// Profile selects a named shared config/credentials profile.
	Profile string
	// UsePathStyle forces path-style addressing (useful for S3-compatible providers).
	UsePathStyle bool
}

// S3 wraps the AWS SDK for Go v2 S3 client with the narrow surface the
// archive needs.
type S3 struct {
	client *s3.Client
}

// NewS3 creates a new S3 wrapper using the default AWS configuration chain,
// with optional overrides from S3Config.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3{client: c}, nil
}

// Put uploads an object to the given bucket/key.
func (s *S3) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, in)
	return err
}

// AnalysisArchive retains one JSON object per completed analysis under
// <prefix>analyses/<id>.json. It is an optional retention sink; failures
// are the caller's to log, never to propagate.
type AnalysisArchive struct {
	s3     *S3
	bucket string
	prefix string
}

// NewAnalysisArchive wires an archive on top of an S3 bucket. prefix may be
// empty; otherwise it should end with "/".
func NewAnalysisArchive(s3c *S3, bucket, prefix string) *AnalysisArchive {
	return &AnalysisArchive{s3: s3c, bucket: bucket, prefix: prefix}
}

// ArchiveAnalysis writes the submitted text and its normalized result.
func (a *AnalysisArchive) ArchiveAnalysis(ctx context.Context, article string, result types.AnalysisResult) error {
	id := uuid.NewString()
	record := map[string]any{
		"id":          id,
		"article":     article,
		"result":      result,
		"analyzed_at": time.Now().UTC(),
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	key := a.prefix + "analyses/" + id + ".json"
	return a.s3.Put(ctx, a.bucket, key, payload, "application/json")
}
