package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tilak630Devi/shop-webpage/internal/auth"
	"github.com/Tilak630Devi/shop-webpage/internal/model"
	"github.com/Tilak630Devi/shop-webpage/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService implements AuthService.
type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	tokens    *auth.TokenManager
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Signup registers a user and issues a token.
func (s *authService) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResult, error) {
	existing, err := s.userRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("phone", req.Phone).Msg("signup rejected, phone taken")
		return nil, model.ErrPhoneTaken
	}

	now := time.Now()
	user := &model.User{
		Phone:     req.Phone,
		Name:      req.Name,
		Addresses: []model.Address{req.Address.Address()},
		Cart:      []model.CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.IssueUser(user.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("phone", user.Phone).Msg("user signed up")

	return &model.AuthResult{Token: token, User: user}, nil
}

// Login issues a token for an existing phone.
func (s *authService) Login(ctx context.Context, phone string) (*model.AuthResult, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	token, err := s.tokens.IssueUser(user.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Debug().Str("phone", phone).Msg("user logged in")

	return &model.AuthResult{Token: token, User: user}, nil
}

// AdminLogin verifies back-office credentials and issues an admin token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return "", model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("username", username).Msg("admin login failed")
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueAdmin(admin.ID.String(), admin.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("admin logged in")

	return token, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist.
func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	existing, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("bootstrap admin created")

	return nil
}
