package usecase

import (
	"context"

	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

const msgInvalidCredentials = "email or password invalid"

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *utils.TokenManager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, internal("failed to login")
	}
	if user == nil {
		s.log.Warn("Login failed: unknown email", zap.String("email", req.Email))
		return nil, notFound(msgInvalidCredentials)
	}

	// 2. Verify password
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		s.log.Warn("Login failed: wrong password", zap.Uint("user_id", user.ID))
		return nil, unauthorized(msgInvalidCredentials)
	}

	// 3. Issue access token
	token, expiresAt, err := s.tokens.Generate(user.ID, user.TypeUser)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.Uint("user_id", user.ID))
		return nil, internal("failed to login")
	}

	s.log.Info("User logged in", zap.Uint("user_id", user.ID))

	return &response.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        response.UserToResponse(user),
	}, nil
}
