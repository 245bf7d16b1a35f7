package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/store"
	"github.com/trackflow/trackflow-server/internal/utils"
	"github.com/trackflow/trackflow-server/internal/validators"
	"github.com/trackflow/trackflow-server/models"
)

const (
	msgLoginSucceeded     = "登录成功"
	msgInvalidCredentials = "invalid email or password"
)

type userService struct {
	userRepository store.UserRepository
	tokenService   TokenService
	validator      validators.Validator

	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		tokenService:     tokenService,
		validator:        validators.NewCredentialsValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// Register validates credentials, stores the user with a bcrypt hash of the
// password and issues a token for the new account.
//
// Returns ErrInvalidDataProvided for a malformed email, an empty or too long
// password or a too long name, and store.ErrEmailAlreadyExists when the email
// is taken.
//
// The account is committed before the token is issued. If issuing fails the
// error wraps ErrTokenCreationFailed while the account stays registered, so
// the caller obtains a token by logging in rather than registering again.
// Issuing only fails on a signing key or issuer that config validation
// already rejects at startup.
func (s *userService) Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	credentials, err := s.prepareCredentials(ctx, credentials)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	passwordHash, err := utils.HashPassword(credentials.Password, s.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Msg("error hashing password")
		return models.User{}, models.Token{}, fmt.Errorf("error hashing password: %w", err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Email:        credentials.Email,
		PasswordHash: passwordHash,
		Name:         credentials.Name,
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "userService.Register").Msg("error creating user")
		}
		return models.User{}, models.Token{}, err
	}

	token, err := s.tokenService.Issue(ctx, models.Claims{UserID: createdUser.ID, Email: createdUser.Email})
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Int64("user_id", createdUser.ID).Msg("user registered without a token")
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("user_id", createdUser.ID).Msg("user registered")
	return createdUser, token, nil
}

// Login checks the email and password pair.
//
// An unknown email and a wrong password produce the same unsuccessful
// LoginResult with a nil error. Errors are returned for invalid input, store
// failures, a malformed stored hash and token issuance failures.
func (s *userService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	log := logger.FromContext(ctx)
	rejected := models.LoginResult{Success: false, Message: msgInvalidCredentials}

	credentials, err := s.prepareCredentials(ctx, credentials, validators.FieldEmail, validators.FieldPassword)
	if err != nil {
		return models.LoginResult{}, err
	}

	foundUser, err := s.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return rejected, nil
	}
	if err != nil {
		log.Err(err).Str("func", "userService.Login").Msg("error finding user by email")
		return models.LoginResult{}, err
	}

	ok, err := utils.VerifyPassword(credentials.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "userService.Login").Int64("user_id", foundUser.ID).Msg("stored password hash is unusable")
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrMalformedStoredCredentials, err)
	}
	if !ok {
		return rejected, nil
	}

	token, err := s.tokenService.Issue(ctx, models.Claims{UserID: foundUser.ID, Email: foundUser.Email})
	if err != nil {
		return models.LoginResult{}, err
	}

	return models.LoginResult{Success: true, Message: msgLoginSucceeded, Token: token.String()}, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.GetUsers").Msg("error getting users")
		return nil, err
	}

	return users, nil
}

// ListUsers returns the requested page of users ordered by id. Out of range
// page parameters are clamped by models.PageRequest.Normalize.
func (s *userService) ListUsers(ctx context.Context, page models.PageRequest) (models.PaginationData[models.User], error) {
	log := logger.FromContext(ctx)
	page = page.Normalize()

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "userService.ListUsers").Msg("error counting users")
		return models.PaginationData[models.User]{}, err
	}

	var users []models.User
	if page.Offset() < total {
		users, err = s.userRepository.ListUsers(ctx, page.PageSize, page.Offset())
		if err != nil {
			log.Err(err).Str("func", "userService.ListUsers").Msg("error listing users")
			return models.PaginationData[models.User]{}, err
		}
	}

	return models.NewPaginationData(users, total, page), nil
}

func (s *userService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Str("func", "userService.Profile").Int64("user_id", userID).Msg("error finding user by id")
		}
		return models.Profile{}, err
	}

	return models.Profile{UserInfo: foundUser}, nil
}

// prepareCredentials normalizes credentials and validates the given fields,
// or all of them when none are given.
func (s *userService) prepareCredentials(ctx context.Context, credentials models.Credentials, fields ...string) (models.Credentials, error) {
	credentials = normalizeCredentials(credentials)

	if err := s.validator.Validate(ctx, credentials, fields...); err != nil {
		return credentials, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return credentials, nil
}

// normalizeCredentials trims and lowercases the email and drops a blank name.
func normalizeCredentials(credentials models.Credentials) models.Credentials {
	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))

	if credentials.Name != nil {
		name := strings.TrimSpace(*credentials.Name)
		if name == "" {
			credentials.Name = nil
		} else {
			credentials.Name = &name
		}
	}

	return credentials
}
