package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
)

// service implements the Service interface
type service struct {
	repo       Repository
	tokenMaker security.Maker
	platform   platform.Service
	config     *Config
}

// NewService creates a new user service
func NewService(repo Repository, tokenMaker security.Maker, platformService platform.Service, config *Config) Service {
	return &service{
		repo:       repo,
		tokenMaker: tokenMaker,
		platform:   platformService,
		config:     config,
	}
}

// Register creates an account seeded with the configured starting balance
func (s *service) Register(ctx context.Context, req *RegisterRequest) (*Response, error) {
	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrInvalidUsername
	}

	snap, err := s.platform.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:      req.Username,
		Role:          models.RoleMember,
		PointsBalance: snap.StartingBalance,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return ToResponse(user), nil
}

// Login authenticates the user and issues an access token
func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, models.ErrUnauthorized
	}

	token, payload, err := s.tokenMaker.CreateToken(user.ID, s.config.AccessTokenDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresAt:   payload.ExpiredAt,
		User:        *ToResponse(user),
	}, nil
}

// GetProfile returns the authenticated user's profile
func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*Response, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToResponse(user), nil
}
