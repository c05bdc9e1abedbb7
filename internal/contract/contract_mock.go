package contract

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockSaver is a mock implementation of Saver for testing.
type MockSaver struct {
	mock.Mock
}

var _ Saver = &MockSaver{} // Compile-time check

// Save implements the Saver interface.
func (m *MockSaver) Save(src io.WriterTo, path string) error {
	args := m.Called(src, path)
	return args.Error(0)
}
