package records

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// ObjectAPI is the subset of the S3 client used by S3Repository.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// S3Repository stores each document as a JSON object named
// "<collection>/<key>.json" in a bucket.
//
// Update is a read-merge-write of the whole object and is not atomic against
// concurrent writers.
type S3Repository struct {
	client ObjectAPI
	bucket string
	prefix string
}

func NewS3Repository(client ObjectAPI, bucket, collection string) *S3Repository {
	return &S3Repository{client: client, bucket: bucket, prefix: collection + "/"}
}

func (r *S3Repository) objectKey(key string) string {
	return r.prefix + key + ".json"
}

func (r *S3Repository) Set(ctx context.Context, key string, rec models.Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}

func (r *S3Repository) Get(ctx context.Context, key string) (models.Record, error) {
	return r.getObject(ctx, r.objectKey(key))
}

func (r *S3Repository) getObject(ctx context.Context, objectKey string) (models.Record, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", objectKey, err)
	}
	return decode(data)
}

func (r *S3Repository) Update(ctx context.Context, key string, changes models.Changes) error {
	rec, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, merge(rec, changes))
}

func (r *S3Repository) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if isNoSuchKey(err) {
		return nil
	}
	return err
}

func (r *S3Repository) GetAll(ctx context.Context) ([]models.Record, error) {
	p := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(r.prefix),
	})

	var keys []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			k := strings.TrimPrefix(aws.ToString(obj.Key), r.prefix)
			if key, ok := strings.CutSuffix(k, ".json"); ok {
				keys = append(keys, key)
			}
		}
	}
	slices.SortFunc(keys, compareKeys)

	out := make([]models.Record, 0, len(keys))
	for _, key := range keys {
		rec, err := r.getObject(ctx, r.objectKey(key))
		if errors.Is(err, common.ErrorNotFound) {
			// deleted between list and get
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *S3Repository) Close() error { return nil }

func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
