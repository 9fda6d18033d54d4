package assets

import (
	"context"
	"io"

	"dormdesk/internal/shared/logger"
)

type fakeStore struct {
	PutFunc func(ctx context.Context, key, contentType string, body io.Reader) error
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	if f.PutFunc != nil {
		return f.PutFunc(ctx, key, contentType, body)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
