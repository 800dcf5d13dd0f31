package mocks

import (
	"context"
	"provider-leads-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, content, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName, downloadName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, downloadName, expiry)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *models.LeadEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
