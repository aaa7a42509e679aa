package usecase

import (
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/services/users"
)

// UserUC implements the user usecase
type UserUC struct {
	userRepo  users.UserRepo
	tokenRepo users.TokenRepo
	userGW    users.UserGW
	cfg       *models.Config
}

// NewUserUC creates a new user usecase
func NewUserUC(userRepo users.UserRepo, tokenRepo users.TokenRepo, userGW users.UserGW, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		userGW:    userGW,
		cfg:       cfg,
	}
}
