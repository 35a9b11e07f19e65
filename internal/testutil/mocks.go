package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockMemberRepository is a mock for MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) Authorize(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockMemberRepository) EnsureMember(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Load(key string) ([]byte, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStateRepository) Save(key string, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}
