package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"igclone/internal/entity"
	"igclone/internal/repo/persistent"
	"igclone/pkg/jwt"
	"igclone/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordBytes = 72

type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.Token, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrEmptyName
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, entity.ErrEmailTaken
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, err
	}

	// bcrypt only reads the first 72 bytes.
	if len(password) > maxPasswordBytes {
		return nil, entity.ErrPasswordTooLong
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, entity.ErrPasswordTooLong
	}
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User %d registered", user.ID)
	user.Password = ""
	return user, nil
}

// Login exchanges credentials for a bearer token. Unknown emails and wrong
// passwords fail identically.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.Token, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &entity.Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(uc.jwtService.TTL().Seconds()),
	}, nil
}
