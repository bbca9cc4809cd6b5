// Package media turns object-storage references ("s3://<key>") found in
// content documents into short-lived presigned GET URLs.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/config"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/server/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// RefPrefix marks a value as an object key in the media bucket.
const RefPrefix = "s3://"

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type Presigner struct {
	client *s3.PresignClient
	bucket string
	ttl    time.Duration
}

// NewPresigner builds an S3 presign client from the server settings. No
// request is made to the object store.
func NewPresigner(ctx context.Context, cfg *config.Config) (*Presigner, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &Presigner{
		client: newS3PresignClient(client),
		bucket: cfg.S3Bucket,
		ttl:    cfg.PresignTTL,
	}, nil
}

// URL returns a presigned GET URL for key.
func (p *Presigner) URL(ctx context.Context, key string) (string, error) {
	req, err := presignGetObject(p.client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

// Resolve presigns ref when it carries RefPrefix and returns it unchanged
// otherwise.
func (p *Presigner) Resolve(ctx context.Context, ref string) (string, error) {
	key, ok := strings.CutPrefix(ref, RefPrefix)
	if !ok {
		return ref, nil
	}
	return p.URL(ctx, key)
}

// Resolver maps a stored media reference to a URL a browser can fetch.
type Resolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// Rewrite walks v (decoded JSON) and replaces every string reference in
// place. Maps and slices are descended into.
func Rewrite(ctx context.Context, r Resolver, v any) (any, error) {
	switch t := v.(type) {
	case string:
		return r.Resolve(ctx, t)
	case map[string]any:
		for k, child := range t {
			nv, err := Rewrite(ctx, r, child)
			if err != nil {
				return nil, err
			}
			t[k] = nv
		}
		return t, nil
	case models.Document:
		_, err := Rewrite(ctx, r, map[string]any(t))
		return t, err
	case []any:
		for i, child := range t {
			nv, err := Rewrite(ctx, r, child)
			if err != nil {
				return nil, err
			}
			t[i] = nv
		}
		return t, nil
	}
	return v, nil
}
