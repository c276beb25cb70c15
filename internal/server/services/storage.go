package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/dpetrovs/heirvault/internal/server/config"
)

// Seams over the AWS SDK so tests can intercept object storage calls
// without a live backend.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ObjectStore uploads finalized blobs and presigns member downloads against
// an S3-compatible backend.
type ObjectStore struct {
	config *sc.Config
}

func NewObjectStore(config *sc.Config) *ObjectStore {
	return &ObjectStore{config: config}
}

func randomStorageKey(vaultID string) string {
	d := time.Now()
	return fmt.Sprintf("vaults/%s/%d/%d/%d/%v", vaultID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (o *ObjectStore) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(o.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			o.config.S3RootUser,
			o.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(opts *s3.Options) {
		opts.BaseEndpoint = aws.String(o.config.S3BaseEndpoint)
		opts.UsePathStyle = true
	}), nil
}

// Put stores data under a fresh key and returns the key.
func (o *ObjectStore) Put(ctx context.Context, vaultID string, data []byte) (string, error) {
	client, err := o.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := o.config.S3Bucket
	key := randomStorageKey(vaultID)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Delete removes a stored object.
func (o *ObjectStore) Delete(ctx context.Context, key string) error {
	client, err := o.getClient(ctx)
	if err != nil {
		return err
	}

	bucket := o.config.S3Bucket
	_, err = deleteObject(client, ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	return err
}

// PresignedGetURL returns a time-limited download URL for a stored object.
func (o *ObjectStore) PresignedGetURL(ctx context.Context, key string) (string, error) {
	client, err := o.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := o.config.S3Bucket
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
