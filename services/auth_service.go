package services

import (
	"errors"
	"strings"

	"backend/configs"
	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backend/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	Cfg  *configs.Config
	Repo *repository.UserRepository
}

func NewAuthService(cfg *configs.Config, repo *repository.UserRepository) *AuthService {
	return &AuthService{Cfg: cfg, Repo: repo}
}

type RegisterIn struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

func (s *AuthService) Register(in *RegisterIn) (string, *entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.Repo.GetByEmail(email); err == nil {
		return "", nil, errors.New("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}
	u := &entity.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Role:        "customer",
	}
	if err := s.Repo.Create(u); err != nil {
		return "", nil, err
	}
	token, err := utils.GenerateToken(u.ID, u.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	return token, u, err
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(u.ID, u.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	return token, u, err
}

type UpdateMeIn struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (s *AuthService) UpdateMe(userID uint, in *UpdateMeIn) (*entity.User, error) {
	u, err := s.Repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if err := s.Repo.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}
