package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AvatarStore keeps contractor avatars in S3. A nil store means the
// bucket is not configured and uploads are refused at the handler.
type AvatarStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewAvatarStore(bucket, region, accessKey, secretKey string) *AvatarStore {
	if bucket == "" || accessKey == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})

	return &AvatarStore{
		client: client,
		bucket: bucket,
		region: region,
	}
}

func (s *AvatarStore) Put(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"https://%s.s3.%s.amazonaws.com/%s",
		s.bucket,
		s.region,
		key,
	), nil
}
