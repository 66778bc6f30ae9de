package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/model"
	"tourbook/internal/session"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSessionStore is a mock implementation of session.StoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, sess session.Session) (string, error) {
	args := m.Called(ctx, sess)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Refresh(ctx context.Context, token string, sess session.Session) error {
	args := m.Called(ctx, token, sess)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "traveller",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "traveller").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "username already taken",
			username: "taken",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "taken").Return(&model.User{Username: "taken"}, nil)
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:     "pre-check race still maps the unique-index violation",
			username: "racer",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "racer").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:          "empty username rejected",
			username:      "  ",
			password:      "secret123",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name:          "empty password rejected",
			username:      "traveller",
			password:      "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, new(MockSessionStore))
			user, err := service.Register(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, model.RoleClient, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				// the stored hash must verify against the original plaintext
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)
	stored := &model.User{ID: 3, Username: "traveller", PasswordHash: string(hashed), Role: model.RoleClient}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login issues a session",
			username: "traveller",
			password: "secret123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "traveller").Return(stored, nil)
				mSess.On("Create", mock.Anything, session.Session{UserID: 3, Username: "traveller", Role: model.RoleClient}).
					Return("tok-1", nil)
			},
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "secret123",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "traveller",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mSess *MockSessionStore) {
				mRepo.On("FindByUsername", mock.Anything, "traveller").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			service := NewAuthService(mockRepo, mockSessions)
			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				// identical error for unknown user and wrong password, so
				// the login form cannot be used to enumerate usernames
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "tok-1", token)
				assert.Equal(t, "traveller", user.Username)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("password change re-hashes; the new password verifies and the old does not", func(t *testing.T) {
		oldHash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), 10)
		stored := &model.User{ID: 3, Username: "traveller", PasswordHash: string(oldHash), Role: model.RoleClient}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		mockSessions := new(MockSessionStore)
		mockSessions.On("Refresh", mock.Anything, "tok-1", mock.AnythingOfType("session.Session")).Return(nil)

		service := NewAuthService(mockRepo, mockSessions)
		user, err := service.UpdateProfile(context.Background(), "tok-1", 3, "traveller", "new-password")

		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-password")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("old-password")))
		mockRepo.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("empty password leaves the stored hash untouched", func(t *testing.T) {
		oldHash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), 10)
		stored := &model.User{ID: 3, Username: "traveller", PasswordHash: string(oldHash), Role: model.RoleClient}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
		mockRepo.On("FindByUsername", mock.Anything, "globetrotter").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		mockSessions := new(MockSessionStore)
		mockSessions.On("Refresh", mock.Anything, "tok-1", session.Session{UserID: 3, Username: "globetrotter", Role: model.RoleClient}).
			Return(nil)

		service := NewAuthService(mockRepo, mockSessions)
		user, err := service.UpdateProfile(context.Background(), "tok-1", 3, "globetrotter", "")

		assert.NoError(t, err)
		assert.Equal(t, "globetrotter", user.Username)
		assert.Equal(t, string(oldHash), user.PasswordHash)
		mockRepo.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("renaming onto an existing username is rejected", func(t *testing.T) {
		stored := &model.User{ID: 3, Username: "traveller", Role: model.RoleClient}

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
		mockRepo.On("FindByUsername", mock.Anything, "taken").Return(&model.User{ID: 9, Username: "taken"}, nil)

		service := NewAuthService(mockRepo, new(MockSessionStore))
		user, err := service.UpdateProfile(context.Background(), "tok-1", 3, "taken", "")

		assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}
