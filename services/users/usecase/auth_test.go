package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/users/mocks"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockTokens := mocks.NewMockTokenRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockTokens, mockGW, userConfig())

	user := &models.User{ID: uuid.New(), Email: "maria@example.com"}
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
		Return(user, hashOf(t, "correct-horse-battery"), nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "correct-horse-battery",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockTokens := mocks.NewMockTokenRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockTokens, mockGW, userConfig())

	user := &models.User{ID: uuid.New(), Email: "maria@example.com"}
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@example.com").
		Return(user, hashOf(t, "correct-horse-battery"), nil)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Nil(t, resp)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockTokens := mocks.NewMockTokenRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockTokens, mockGW, userConfig())

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, "", apperrors.ErrNotFound)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-password",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, resp)
}

func TestLogout_RevokesUntilExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockTokens := mocks.NewMockTokenRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockTokens, mockGW, userConfig())

	claims := &models.AuthClaims{
		UserID:   uuid.New(),
		TokenID:  uuid.NewString(),
		ExpireAt: time.Now().Add(time.Hour).Unix(),
	}

	mockTokens.EXPECT().RevokeToken(gomock.Any(), claims.TokenID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
			assert.Greater(t, ttl, 55*time.Minute)
			assert.LessOrEqual(t, ttl, time.Hour)
			return nil
		})

	assert.NoError(t, uc.Logout(context.Background(), claims))
}

func TestLogout_ExpiredTokenIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockTokens := mocks.NewMockTokenRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockTokens, mockGW, userConfig())

	claims := &models.AuthClaims{
		UserID:   uuid.New(),
		TokenID:  uuid.NewString(),
		ExpireAt: time.Now().Add(-time.Minute).Unix(),
	}

	// No RevokeToken expectation: an expired token needs no denylist entry
	assert.NoError(t, uc.Logout(context.Background(), claims))
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockTokens := mocks.NewMockTokenRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockTokens, mockGW, userConfig())

	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().GetPasswordHash(gomock.Any(), id).
			Return(hashOf(t, "old-password-123"), nil)
		mockRepo.EXPECT().UpdatePassword(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, newHash string) error {
				return bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password-456"))
			})

		err := uc.ChangePassword(context.Background(), id, models.ChangePasswordRequest{
			OldPassword: "old-password-123",
			NewPassword: "new-password-456",
		})

		assert.NoError(t, err)
	})

	t.Run("Wrong Old Password", func(t *testing.T) {
		mockRepo.EXPECT().GetPasswordHash(gomock.Any(), id).
			Return(hashOf(t, "old-password-123"), nil)

		err := uc.ChangePassword(context.Background(), id, models.ChangePasswordRequest{
			OldPassword: "not-the-old-password",
			NewPassword: "new-password-456",
		})

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Short New Password", func(t *testing.T) {
		err := uc.ChangePassword(context.Background(), id, models.ChangePasswordRequest{
			OldPassword: "old-password-123",
			NewPassword: "short",
		})

		assert.Error(t, err)
	})
}
