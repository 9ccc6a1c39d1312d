package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, entry Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter Filter) ([]Entry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
