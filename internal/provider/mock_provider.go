package provider

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider using testify/mock.
type MockProvider struct {
	mock.Mock

	// ProviderName and Availability back Name/Available without
	// expectation bookkeeping, since chains probe them repeatedly.
	ProviderName string
	Availability bool
}

func (m *MockProvider) Name() string { return m.ProviderName }

func (m *MockProvider) Available() bool { return m.Availability }

func (m *MockProvider) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Tag(ctx context.Context, text string) ([]string, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProvider) Answer(ctx context.Context, text, question string) (string, error) {
	args := m.Called(ctx, text, question)
	return args.String(0), args.Error(1)
}
