package gemini

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock prompt generator using testify/mock.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	args := m.Called(ctx, prompt)
	if resp := args.Get(0); resp != nil {
		return resp.(*GenerateResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
