package services

import (
	"go.uber.org/zap"

	"purple-insta/internal/application/command"
	"purple-insta/internal/application/mapper"
	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
	"purple-insta/internal/infrastructure"
	"purple-insta/internal/util"
)

type UserService struct {
	userRepo     repositories.UserRepository
	tokenService *infrastructure.TokenService
	loginLimiter *infrastructure.RateLimiter
}

func NewUserService(
	userRepo repositories.UserRepository,
	tokenService *infrastructure.TokenService,
	loginLimiter *infrastructure.RateLimiter,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		tokenService: tokenService,
		loginLimiter: loginLimiter,
	}
}

func (s *UserService) Register(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrDuplicateHandle
	}

	existingUser, err = s.userRepo.FindByEmail(registerCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrDuplicateEmail
	}

	newUser := entities.NewUser(
		registerCommand.Username,
		registerCommand.Email,
		registerCommand.Password,
		registerCommand.ZipCode,
	)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	util.Logger.Info("user registered", zap.String("username", createdUser.Username))

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

// Login resolves the handle and verifies the password. An unknown handle
// and a wrong password both surface as ErrInvalidCredentials so a caller
// cannot tell which one happened.
func (s *UserService) Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.loginLimiter.Allow(loginCommand.Username) {
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByCredentials(loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(user.Id)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// UpdateZipCode sets the zip code used by the representative lookup.
func (s *UserService) UpdateZipCode(id uint, zipCode string) error {
	return s.userRepo.UpdateZipCode(id, zipCode)
}
