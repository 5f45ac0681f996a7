package media

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct {
	s3iface.S3API
	mock.Mock
	listed []*s3.Object
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	args := m.Called(aws.StringValue(in.Key), aws.StringValue(in.ContentType), string(body))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockS3) DeleteObjectWithContext(ctx aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	args := m.Called(aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func (m *mockS3) ListObjectsV2PagesWithContext(ctx aws.Context, in *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool, _ ...request.Option) error {
	m.Called(aws.StringValue(in.Prefix))
	fn(&s3.ListObjectsV2Output{Contents: m.listed}, true)
	return nil
}

func (m *mockS3) DeleteObjectsWithContext(ctx aws.Context, in *s3.DeleteObjectsInput, _ ...request.Option) (*s3.DeleteObjectsOutput, error) {
	args := m.Called(len(in.Delete.Objects))
	return &s3.DeleteObjectsOutput{}, args.Error(0)
}

func TestS3Store_Save(t *testing.T) {
	client := &mockS3{}
	client.On("PutObjectWithContext", "media/shop/s1/images/a.jpg", "image/jpeg", "bytes").Return(nil).Once()

	store := NewS3StoreWithClient(client, "bucket")
	require.NoError(t, store.Save(context.Background(), "media/shop/s1/images/a.jpg", strings.NewReader("bytes"), "image/jpeg"))
	client.AssertExpectations(t)
}

func TestS3Store_RejectsPathOutsideRoot(t *testing.T) {
	client := &mockS3{}
	store := NewS3StoreWithClient(client, "bucket")
	assert.Error(t, store.Save(context.Background(), "other/a.jpg", strings.NewReader("x"), "image/jpeg"))
	assert.Error(t, store.Remove(context.Background(), "../a.jpg"))
	client.AssertNotCalled(t, "PutObjectWithContext", mock.Anything, mock.Anything, mock.Anything)
}

func TestS3Store_RemoveAll(t *testing.T) {
	client := &mockS3{listed: []*s3.Object{
		{Key: aws.String("media/shop/s1/main/m.jpg")},
		{Key: aws.String("media/shop/s1/images/a.jpg")},
	}}
	client.On("ListObjectsV2PagesWithContext", "media/shop/s1/").Return().Once()
	client.On("DeleteObjectsWithContext", 2).Return(nil).Once()

	store := NewS3StoreWithClient(client, "bucket")
	require.NoError(t, store.RemoveAll(context.Background(), ShopDir("s1")))
	client.AssertExpectations(t)
}

func TestS3Store_Remove(t *testing.T) {
	client := &mockS3{}
	client.On("DeleteObjectWithContext", "media/shop/s1/main/m.jpg").Return(nil).Once()

	store := NewS3StoreWithClient(client, "bucket")
	require.NoError(t, store.Remove(context.Background(), "media/shop/s1/main/m.jpg"))
	client.AssertExpectations(t)
}
