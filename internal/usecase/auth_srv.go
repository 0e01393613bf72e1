package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	AdminUpdateUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) (*response.UserResponse, error)
}

type authService struct {
	repo     *repository.Repository
	tokenTTL time.Duration
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokenTTL time.Duration, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		tokenTTL: tokenTTL,
		log:      log.With(zap.String("service", "auth")),
	}
}

// NormalizeEmail is applied to every email that crosses an API boundary so
// lookups never miss on letter case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	title := entity.UserTitle(req.Title)
	if title == "" {
		title = entity.TitleMr
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Title:        title,
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == entity.ErrDuplicateEmail {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))

	return s.issueSession(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPassword(req.Password, user.PasswordHash) {
		// Same error for unknown email and bad password.
		return nil, entity.ErrInvalidCredentials
	}
	if user.Status != entity.UserStatusActive {
		return nil, entity.ErrAccountDisabled
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID.String()))

	return s.issueSession(user)
}

func (s *authService) issueSession(user *entity.User) (*response.AuthResponse, error) {
	token, err := s.repo.Tokens.Issue(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	resp := response.AuthToResponse(user, token, time.Now().Add(s.tokenTTL))
	return &resp, nil
}

func (s *authService) Logout(_ context.Context, token string) error {
	s.repo.Tokens.Revoke(token)
	return nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// AdminUpdateUserStatus suspends, bans or reinstates an account. Sessions
// stay issued; the auth middleware rejects non-active users per request.
func (s *authService) AdminUpdateUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	// The shared guest account backs every guest checkout.
	if user.Email == entity.GuestEmail {
		return nil, fmt.Errorf("%w: guest account status cannot change", entity.ErrValidation)
	}

	if err := s.repo.User.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}

	s.log.Info("user status updated",
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)),
	)

	user.Status = status
	resp := response.UserToResponse(user)
	return &resp, nil
}
