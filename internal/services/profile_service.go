package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/auth"
	"github.com/gojobs/board/internal/dtos"
	"github.com/gojobs/board/internal/logging"
	"github.com/gojobs/board/internal/models"
	"github.com/gojobs/board/internal/repositories"
)

type ProfileService struct {
	users    repositories.UserRepository
	profiles repositories.ProfileRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
	log      logging.Logger
}

func NewProfileService(users repositories.UserRepository, profiles repositories.ProfileRepository, tokens *auth.TokenManager, log logging.Logger) *ProfileService {
	return &ProfileService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		validate: newValidator(),
		log:      log.With("service", "profiles"),
	}
}

// Register creates the account and its profile together. The repository runs
// both inserts in one transaction, so a failing profile write never leaves an
// account behind.
func (s *ProfileService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	profile := &models.Profile{
		GitHub:    req.GitHub,
		LinkedIn:  req.LinkedIn,
		Portfolio: req.Portfolio,
		Cellphone: req.Cellphone,
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, repositories.ErrDuplicateAccount) {
			return nil, apperrors.NewValidationError(apperrors.FieldError{
				Field:   "username",
				Message: "username or email already registered",
			})
		}
		return nil, err
	}
	s.log.Info(ctx, "account registered", "account_id", user.ID)
	return user, nil
}

// Login checks the credentials and issues a session token.
func (s *ProfileService) Login(ctx context.Context, req *dtos.LoginRequest) (string, *models.User, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return "", nil, err
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UpdateProfile overwrites only the fields present in the request.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID uint, req *dtos.ProfileUpdateRequest) (*models.Profile, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.GitHub != nil {
		profile.GitHub = *req.GitHub
	}
	if req.LinkedIn != nil {
		profile.LinkedIn = *req.LinkedIn
	}
	if req.Portfolio != nil {
		profile.Portfolio = *req.Portfolio
	}
	if req.Cellphone != nil {
		profile.Cellphone = *req.Cellphone
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ChangePassword rotates the password after checking the old one. A missing
// account or a mismatch both read as unauthorized.
func (s *ProfileService) ChangePassword(ctx context.Context, accountID uint, req *dtos.ChangePasswordRequest) error {
	if err := validateStruct(s.validate, req); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return apperrors.ErrUnauthorized
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	s.log.Info(ctx, "password changed", "account_id", user.ID)
	return nil
}
