package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/poi-explorer/internal/domain"
	"github.com/poi-explorer/internal/domain/repository"
	"github.com/poi-explorer/internal/pkg/errors"
	"github.com/poi-explorer/internal/usecase/dto"
)

// AuthUseCase - регистрация, вход и профиль пользователя
type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.userRepo.Create(ctx, domain.UserCreate{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*domain.User, error) {
	patch := domain.UserPatch{
		Username: req.Username,
		Email:    req.Email,
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password", zap.Error(err))
			return nil, errors.ErrInternalServer
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	if err := uc.userRepo.Update(ctx, userID, patch); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, userID)
}

// VerifyToken разбирает и проверяет JWT, возвращая id пользователя.
// Пользователь дополнительно проверяется на существование: токен
// переживает удаление аккаунта.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.ErrUnauthorized
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.ErrUnauthorized
	}

	user, err := uc.userRepo.GetByID(ctx, int64(sub))
	if err != nil {
		return nil, errors.ErrUnauthorized
	}

	return user, nil
}

func (uc *AuthUseCase) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(uc.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return "", errors.ErrInternalServer
	}

	return signed, nil
}
