package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/common"
)

// S3Config cấu hình bucket lưu media.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string // MinIO / S3-compatible, để trống nếu dùng AWS
}

// S3Store lưu media lên S3, key chính là đường dẫn tương đối media/shop/...
type S3Store struct {
	client s3iface.S3API
	bucket string
}

// NewS3Store tạo session AWS và S3Store. Không có access key thì dùng credential chain mặc định.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewS3StoreWithClient(s3.New(sess), cfg.Bucket), nil
}

// NewS3StoreWithClient dùng client có sẵn (test truyền fake s3iface.S3API).
func NewS3StoreWithClient(client s3iface.S3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket}
}

// Save upload tệp lên bucket.
func (s *S3Store) Save(ctx context.Context, relPath string, r io.Reader, contentType string) error {
	if !IsUnderRoot(relPath) {
		return common.NewError(common.ErrCodeMediaStore, fmt.Sprintf("đường dẫn media không hợp lệ: %s", relPath), common.StatusBadRequest, nil)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(relPath),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// Remove xóa một object. S3 không báo lỗi khi key không tồn tại.
func (s *S3Store) Remove(ctx context.Context, relPath string) error {
	if !IsUnderRoot(relPath) {
		return common.NewError(common.ErrCodeMediaStore, fmt.Sprintf("đường dẫn media không hợp lệ: %s", relPath), common.StatusBadRequest, nil)
	}
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(relPath),
	})
	return err
}

// RemoveAll xóa mọi object có key bắt đầu bằng prefix/ (theo từng trang 1000 key).
func (s *S3Store) RemoveAll(ctx context.Context, prefix string) error {
	if !IsUnderRoot(prefix) {
		return common.NewError(common.ErrCodeMediaStore, fmt.Sprintf("đường dẫn media không hợp lệ: %s", prefix), common.StatusBadRequest, nil)
	}

	var objects []*s3.ObjectIdentifier
	err := s.client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(strings.TrimSuffix(prefix, "/") + "/"),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			objects = append(objects, &s3.ObjectIdentifier{Key: obj.Key})
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("list S3 objects: %w", err)
	}

	for start := 0; start < len(objects); start += 1000 {
		end := start + 1000
		if end > len(objects) {
			end = len(objects)
		}
		_, err := s.client.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &s3.Delete{Objects: objects[start:end], Quiet: aws.Bool(true)},
		})
		if err != nil {
			return fmt.Errorf("delete S3 objects: %w", err)
		}
	}
	return nil
}
