package service

import (
	"context"
	"strings"
	"time"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/auth/dto"
	"github.com/soheiltpr/calfind/modules/auth/entity"
	"github.com/soheiltpr/calfind/modules/auth/repository"
)

// AuthService handles organizer accounts
type AuthService struct {
	repo  repository.OrganizerRepositoryInterface
	cache cache.ICache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
}

func NewAuthService(repo repository.OrganizerRepositoryInterface, c cache.ICache) AuthServiceInterface {
	return &AuthService{
		repo:  repo,
		cache: c,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(req.Password) < 6 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name and a password of at least 6 characters are required", nil)
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check organizer name", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An organizer with this name already exists", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	organizer, err := s.repo.Create(ctx, &entity.Organizer{
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create organizer", err)
	}

	return s.issueToken(organizer)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	organizer, err := s.repo.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up organizer", err)
	}
	if organizer == nil || !utils.CheckPassword(organizer.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrInvalidCredentials, "Wrong name or password", nil)
	}

	return s.issueToken(organizer)
}

// Logout blacklists the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}

	return nil
}

func (s *AuthService) issueToken(organizer *entity.Organizer) (*dto.AuthResponse, *errors.AppError) {
	token, err := utils.GenerateToken(organizer.ID, constants.RoleOrganizer, nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.AuthResponse{
		Token: token,
		ID:    organizer.ID.String(),
		Name:  organizer.Name,
	}, nil
}
