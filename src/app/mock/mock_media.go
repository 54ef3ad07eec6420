package media_mock

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	app "github.com/Dahreau/buy-01/src/app"
)

// MockClient is a testify mock of the media service boundary.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ByProduct(ctx context.Context, productID string) ([]app.MediaAttachment, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]app.MediaAttachment), args.Error(1)
}

func (m *MockClient) Upload(ctx context.Context, token, productID, fileName string, file io.Reader) (app.MediaAttachment, error) {
	args := m.Called(ctx, token, productID, fileName, file)
	return args.Get(0).(app.MediaAttachment), args.Error(1)
}
