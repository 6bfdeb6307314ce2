package usecase

import (
	"context"
	"fmt"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/dto/response"
	"riget-zoo/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password; the
	// two are never distinguished to the caller.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrEmailTaken         = fmt.Errorf("email already registered")
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// EnsureAdmin creates the bootstrap admin account if no user with that
	// email exists yet. Called once at startup.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		Surname:      req.Surname,
		Address1:     req.Address1,
		Postcode:     req.Postcode,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User signed up",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return s.startSession(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return s.startSession(ctx, user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := s.repo.Session.Delete(ctx, parsed); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		Surname:      "User",
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	s.log.Info("Bootstrap admin account created", zap.String("email", email))

	return nil
}

func (s *authService) startSession(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &response.AuthResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
		User:      response.UserToResponse(user),
	}, nil
}
