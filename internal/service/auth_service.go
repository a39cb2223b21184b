package service

import (
	"errors"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/repository"
	"github.com/EliseyAgustin/Sistema-de-Inventario/pkg/jwt"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Register(req *model.RegisterRequest) (uint, error)
	Profile(userID uint) (*model.UserResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// Unknown user and wrong password are indistinguishable to the caller
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) Register(req *model.RegisterRequest) (uint, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := model.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return 0, err
	}

	if err := s.userRepo.Create(&user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *authService) Profile(userID uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
