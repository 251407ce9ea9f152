package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Induma-Magammana/FitLife-Tracker/config"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/dto"
	apperrors "github.com/Induma-Magammana/FitLife-Tracker/internal/errors"
)

// UserService implements the session authority: registration, login,
// profile reads and updates, password changes.
type UserService struct {
	store      domain.UserStore
	tokens     TokenGenerator
	bcryptCost int
}

func NewUserService(store domain.UserStore, tokens TokenGenerator, cfg *config.Config) *UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = config.DefaultBcryptCost
	}
	return &UserService{
		store:      store,
		tokens:     tokens,
		bcryptCost: cost,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthOutput, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidation("please provide all required fields")
	}

	email := strings.ToLower(input.Email)

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}

	// The store re-checks uniqueness under its own lock, so a concurrent
	// registration with the same email loses here rather than overwriting.
	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyInUse) {
			return nil, apperrors.ErrEmailAlreadyInUse
		}
		return nil, apperrors.NewInternal(err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &dto.AuthOutput{User: dto.NewUserOutput(user), Token: token}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidation("please provide email and password")
	}

	user, err := s.store.GetByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	// Unknown email and wrong password take the same path so callers cannot
	// probe which addresses are registered.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &dto.AuthOutput{User: dto.NewUserOutput(user), Token: token}, nil
}

func (s *UserService) GetCurrent(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	out := dto.NewUserOutput(user)
	return &out, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input dto.UpdateProfileInput) (*dto.UserOutput, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if email := strings.ToLower(input.Email); email != "" && email != user.Email {
		other, err := s.store.GetByEmail(ctx, email)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if other != nil {
			return nil, apperrors.ErrEmailAlreadyInUse
		}
		user.Email = email
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := dto.NewUserOutput(user)
	return &out, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return apperrors.NewValidation("please provide current and new password")
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.bcryptCost)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	user.PasswordHash = string(hashed)

	if err := s.store.Update(ctx, user); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// ForgotPassword is a stub: no reset delivery mechanism exists. It validates
// the input and deliberately does not reveal whether the email is registered.
func (s *UserService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) error {
	if input.Email == "" {
		return apperrors.NewValidation("please provide email")
	}
	return nil
}
