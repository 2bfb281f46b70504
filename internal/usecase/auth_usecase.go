package usecase

import (
	"fmt"

	"mini-blog/internal/entity"
	"mini-blog/internal/repo/persistent"
	"mini-blog/pkg/jwt"
	"mini-blog/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(username, email, password string) (*entity.User, error)
	Login(username, password string) (string, error)
	ResolveUser(username string) (uint, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(username, email, password string) (*entity.User, error) {
	_, err := uc.userRepo.GetByUsername(username)
	if err == nil {
		return nil, fmt.Errorf("username already exists")
	}

	_, err = uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user")
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("incorrect username or password")
	}

	token, err := uc.jwtService.GenerateToken(user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", fmt.Errorf("failed to generate token")
	}

	return token, nil
}

// ResolveUser maps a token subject back to a stored user id. A token
// whose subject no longer exists is treated as invalid by the caller.
func (uc *authUseCase) ResolveUser(username string) (uint, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return 0, fmt.Errorf("user not found")
	}
	return user.ID, nil
}
