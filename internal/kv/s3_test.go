package kv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	getErr  error
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{objects: make(map[string][]byte)}
	store := NewS3Store(client, "causa")

	_, found, err := store.Get(ctx, "connect_causa_users")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Put(ctx, "connect_causa_users", []byte(`[]`)))
	assert.Contains(t, client.objects, "causa/collections/connect_causa_users.json")

	got, found, err := store.Get(ctx, "connect_causa_users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(got))
}

func TestS3StoreGetError(t *testing.T) {
	boom := errors.New("access denied")
	store := NewS3Store(&fakeS3{getErr: boom}, "causa")

	_, _, err := store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}
