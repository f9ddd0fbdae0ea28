package usecase

import (
	"context"
	"errors"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgEmailInUse = "email já está em uso"

type UserService interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetAll(ctx context.Context) ([]response.UserResponse, error)
	GetByIDWithAddresses(ctx context.Context, id uint) (*response.UserResponse, error)
	UpdatePassword(ctx context.Context, id uint, req *request.UpdatePasswordRequest) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Email must be free
	existing, err := us.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		us.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, internal("failed to create user")
	}
	if existing != nil {
		return nil, badRequest(msgEmailInUse)
	}

	// 2. Hash password
	hashed, err := us.hash(req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Save with the default role
	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		CPF:      req.CPF,
		TypeUser: entity.UserTypeUser,
		Password: hashed,
	}
	if err := us.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup on the unique email index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badRequest(msgEmailInUse)
		}
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, internal("failed to create user")
	}

	us.log.Info("User created", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAll(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get users", zap.Error(err))
		return nil, internal("failed to get users")
	}

	resp := make([]response.UserResponse, len(users))
	for i, user := range users {
		resp[i] = response.UserToResponse(user)
	}
	return resp, nil
}

func (us *userService) GetByIDWithAddresses(ctx context.Context, id uint) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByIDWithAddresses(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Uint("user_id", id))
		return nil, internal("failed to get user")
	}
	if user == nil {
		return nil, notFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdatePassword(ctx context.Context, id uint, req *request.UpdatePasswordRequest) error {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.Uint("user_id", id))
		return internal("failed to update password")
	}
	if user == nil {
		return notFound("user not found")
	}

	if utils.CheckPasswordHash(req.NewPassword, user.Password) {
		return badRequest("new password must differ from the current password")
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.Password) {
		return badRequest("old password invalid")
	}

	hashed, err := us.hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := us.userRepo.UpdatePassword(ctx, id, hashed); err != nil {
		us.log.Error("Failed to update password", zap.Error(err), zap.Uint("user_id", id))
		return internal("failed to update password")
	}

	us.log.Info("Password updated", zap.Uint("user_id", id))
	return nil
}

func (us *userService) hash(password string) (string, error) {
	hashed, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", badRequest("password must be at most 72 bytes")
	}
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return "", internal("failed to process password")
	}
	return hashed, nil
}
