package service

import (
	"context"
	"fmt"
	"time"

	"millet-market/internal/auth"
	"millet-market/internal/model"
	"millet-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MinPasswordLength applies to registration only; a changed password may be
// any length.
const MinPasswordLength = 6

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new account. The password is stored only as a bcrypt
// hash, never plaintext.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, model.ErrMissingUserFields
	}
	if len(req.Password) < MinPasswordLength {
		return nil, model.ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", req.Email).Msg("registration with taken email")
		return nil, model.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Photo:     model.DefaultUserPhoto,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index catches a concurrent registration that slipped
		// past the lookup above.
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("user registered")

	return user, nil
}

// Login authenticates by email and password.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, model.ErrMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("failed login attempt")
		return nil, model.ErrBadCredentials
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("user logged in")

	return user, nil
}

// GetByID retrieves a user for an authenticated session. A session whose user
// no longer resolves maps to the gone-user error.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserGone
	}
	return user, nil
}

// UpdateProfile replaces each field present in the request and keeps the
// rest. Email is immutable on this path.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserUpdateNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Photo != "" {
		user.Photo = req.Photo
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Whatsapp != "" {
		user.Whatsapp = req.Whatsapp
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("profile updated")

	return user, nil
}

// ChangePassword verifies the old password and stores a new hash. The stored
// hash is untouched when the old password is wrong.
func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req *model.ChangePasswordRequest) error {
	if req.OldPassword == "" || req.Password == "" {
		return model.ErrMissingPasswords
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return model.ErrUserGone
	}

	if !auth.CheckPassword(req.OldPassword, user.Password) {
		s.logger.Warn().Str("user_id", id.String()).Msg("password change with wrong old password")
		return model.ErrOldPasswordIncorrect
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash new password")
		return fmt.Errorf("failed to change password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id.String()).Msg("password changed")

	return nil
}

// GetShopsByCity searches shops by city. An empty result is a valid answer;
// only a query failure is an error.
func (s *userService) GetShopsByCity(ctx context.Context, city string) ([]model.User, error) {
	shops, err := s.userRepo.FindByCity(ctx, city)
	if err != nil {
		s.logger.Error().Err(err).Str("city", city).Msg("shop search failed")
		return nil, model.ErrShopSearchFailed
	}

	s.logger.Debug().
		Str("city", city).
		Int("count", len(shops)).
		Msg("shop search completed")

	if shops == nil {
		shops = []model.User{}
	}
	return shops, nil
}
