package utils

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3Storage archives generated documents to an S3-compatible bucket.
type S3Storage struct {
	client *s3.S3
	bucket string
	folder string
}

type S3Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	Folder    string
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create S3 session: %v", err)
	}

	return &S3Storage{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		folder: cfg.Folder,
	}, nil
}

// Upload stores the PDF under a unique key and returns its URL. The uuid
// prefix keeps repeated generations of the same document from overwriting
// each other.
func (s *S3Storage) Upload(pdf []byte, fileName string) (string, error) {
	filePath := fmt.Sprintf("%s/%s-%s", s.folder, uuid.New().String(), fileName)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(pdf),
		ContentLength: aws.Int64(int64(len(pdf))),
		ContentType:   aws.String("application/pdf"),
	})

	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.Endpoint, s.bucket, filePath), nil
}
