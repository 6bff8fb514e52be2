// internal/core/services/accounts_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
	"github.com/freshsaver/freshsaver-be/internal/core/services"
	"github.com/freshsaver/freshsaver-be/test/helpers"
	"github.com/freshsaver/freshsaver-be/test/mocks"
)

func TestAccountService_ResolveID(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMocks    func(*mocks.MockUserRepository)
		expectedID    int64
		expectedError error
	}{
		{
			name:  "resolves_known_email",
			email: "alice@example.com",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().
					FindIDByEmail(gomock.Any(), "alice@example.com").
					Return(int64(7), nil)
			},
			expectedID: 7,
		},
		{
			name:  "normalizes_case_and_whitespace",
			email: "  Alice@Example.COM ",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().
					FindIDByEmail(gomock.Any(), "alice@example.com").
					Return(int64(7), nil)
			},
			expectedID: 7,
		},
		{
			name:  "unknown_email_reports_not_found",
			email: "nobody@example.com",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().
					FindIDByEmail(gomock.Any(), "nobody@example.com").
					Return(int64(0), ports.ErrNotFound)
			},
			expectedError: ports.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockUserRepository(ctrl)
			service := services.NewAccountService(mockRepo, bcrypt.MinCost, helpers.TestLogger())

			tt.setupMocks(mockRepo)

			id, err := service.ResolveID(context.Background(), tt.email)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
		})
	}
}

func TestAccountService_SetPassword(t *testing.T) {
	t.Run("existing_email_replaces_hash_in_place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		service := services.NewAccountService(mockRepo, bcrypt.MinCost, helpers.TestLogger())

		mockRepo.EXPECT().
			FindIDByEmail(gomock.Any(), "alice@example.com").
			Return(int64(7), nil)
		mockRepo.EXPECT().
			UpdatePasswordHash(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, hash string) error {
				// The stored value must be a verifiable bcrypt hash, never
				// the raw password.
				assert.NotEqual(t, "s3cret", hash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
				return nil
			})

		id, err := service.SetPassword(context.Background(), "alice@example.com", "s3cret", domain.User{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("new_email_creates_principal_with_profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		service := services.NewAccountService(mockRepo, bcrypt.MinCost, helpers.TestLogger())

		mockRepo.EXPECT().
			FindIDByEmail(gomock.Any(), "bob@example.com").
			Return(int64(0), ports.ErrNotFound)
		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *domain.User) error {
				assert.Equal(t, "bob@example.com", user.Email)
				assert.Equal(t, "Bob", user.Forename)
				assert.NotEmpty(t, user.PasswordHash)
				user.ID = 8
				return nil
			})

		id, err := service.SetPassword(context.Background(), "bob@example.com", "hunter2",
			domain.User{Forename: "Bob"})
		require.NoError(t, err)
		assert.Equal(t, int64(8), id)
	})

	t.Run("rejects_empty_password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		service := services.NewAccountService(mockRepo, bcrypt.MinCost, helpers.TestLogger())

		_, err := service.SetPassword(context.Background(), "alice@example.com", "", domain.User{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password is required")
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockUserRepository(ctrl)
		service := services.NewAccountService(mockRepo, bcrypt.MinCost, helpers.TestLogger())

		_, err := service.SetPassword(context.Background(), "not-an-email", "s3cret", domain.User{})
		require.Error(t, err)
	})
}

func TestAccountService_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: 7, Email: "alice@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name        string
		id          int64
		password    string
		setupMocks  func(*mocks.MockUserRepository)
		expectedOK  bool
		expectedErr bool
	}{
		{
			name:     "correct_password_verifies",
			id:       7,
			password: "s3cret",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
			},
			expectedOK: true,
		},
		{
			name:     "wrong_password_fails_closed",
			id:       7,
			password: "wrong",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(user, nil)
			},
			expectedOK: false,
		},
		{
			name:     "unknown_id_fails_closed_without_error",
			id:       404,
			password: "s3cret",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, ports.ErrNotFound)
			},
			expectedOK: false,
		},
		{
			name:     "infrastructure_failure_surfaces",
			id:       7,
			password: "s3cret",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, errors.New("connection reset"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockUserRepository(ctrl)
			service := services.NewAccountService(mockRepo, bcrypt.MinCost, helpers.TestLogger())

			tt.setupMocks(mockRepo)

			ok, err := service.Verify(context.Background(), tt.id, tt.password)

			if tt.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestContactService_Submit(t *testing.T) {
	valid := &domain.ContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Are weekend pickups possible?",
	}

	t.Run("stores_valid_message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockContactRepository(ctrl)
		service := services.NewContactService(mockRepo, helpers.TestLogger())

		mockRepo.EXPECT().Save(gomock.Any(), valid).Return(nil)

		require.NoError(t, service.Submit(context.Background(), valid))
	})

	t.Run("rejects_incomplete_message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockContactRepository(ctrl)
		service := services.NewContactService(mockRepo, helpers.TestLogger())

		incomplete := &domain.ContactMessage{Name: "Alice"}
		err := service.Submit(context.Background(), incomplete)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}
