package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/dpetrovs/heirvault/internal/server/config"
)

func testStoreConfig() *sc.Config {
	return &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "heirvault",
	}
}

func stubAWSSeams(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://127.0.0.1:9000" {
			t.Fatalf("BaseEndpoint not set: %v", opts.BaseEndpoint)
		}
		if !opts.UsePathStyle {
			t.Fatal("UsePathStyle not set")
		}
		return &s3.Client{}
	}
}

func TestObjectStorePut(t *testing.T) {
	stubAWSSeams(t)

	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	var gotBucket, gotKey string
	var gotBody []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		b, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		gotBody = b
		return &s3.PutObjectOutput{}, nil
	}

	store := NewObjectStore(testStoreConfig())
	key, err := store.Put(context.Background(), "v-1", []byte("payload"))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if key != gotKey {
		t.Fatalf("returned key %q differs from stored key %q", key, gotKey)
	}
	if !strings.HasPrefix(key, "vaults/v-1/") {
		t.Fatalf("key %q not scoped to vault", key)
	}
	if gotBucket != "heirvault" {
		t.Fatalf("bucket = %q", gotBucket)
	}
	if string(gotBody) != "payload" {
		t.Fatalf("body = %q", string(gotBody))
	}
}

func TestObjectStorePut_Error(t *testing.T) {
	stubAWSSeams(t)

	origPut := putObject
	t.Cleanup(func() { putObject = origPut })

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("backend down")
	}

	store := NewObjectStore(testStoreConfig())
	if _, err := store.Put(context.Background(), "v-1", []byte("x")); err == nil {
		t.Fatal("expected error")
	}
}

func TestObjectStoreDelete(t *testing.T) {
	stubAWSSeams(t)

	origDelete := deleteObject
	t.Cleanup(func() { deleteObject = origDelete })

	var gotKey string
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		gotKey = *in.Key
		return &s3.DeleteObjectOutput{}, nil
	}

	store := NewObjectStore(testStoreConfig())
	if err := store.Delete(context.Background(), "vaults/v-1/k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotKey != "vaults/v-1/k" {
		t.Fatalf("key = %q", gotKey)
	}
}

func TestObjectStorePresignedGetURL(t *testing.T) {
	stubAWSSeams(t)

	origNewPre := newS3PresignClient
	origPresign := presignGetObject
	t.Cleanup(func() {
		newS3PresignClient = origNewPre
		presignGetObject = origPresign
	})

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		if c == nil {
			t.Fatal("nil client passed to presign")
		}
		return &s3.PresignClient{}
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Key != "vaults/v-1/k" {
			t.Fatalf("key = %q", *in.Key)
		}
		return &v4.PresignedHTTPRequest{URL: "http://signed.example/obj"}, nil
	}

	store := NewObjectStore(testStoreConfig())
	url, err := store.PresignedGetURL(context.Background(), "vaults/v-1/k")
	if err != nil {
		t.Fatalf("PresignedGetURL: %v", err)
	}
	if url != "http://signed.example/obj" {
		t.Fatalf("url = %q", url)
	}
}

func TestObjectStore_ConfigLoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no credentials")
	}

	store := NewObjectStore(testStoreConfig())
	if _, err := store.Put(context.Background(), "v-1", []byte("x")); err == nil {
		t.Fatal("expected error")
	}
	if err := store.Delete(context.Background(), "k"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := store.PresignedGetURL(context.Background(), "k"); err == nil {
		t.Fatal("expected error")
	}
}
