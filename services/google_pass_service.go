package services

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const googleSaveURLPrefix = "https://pay.google.com/gp/v/save/"

type GooglePassService struct {
	IssuerID string
	ClassID  string
	SAEmail  string
	Key      *rsa.PrivateKey

	DB         *gorm.DB
	PassRepo   *repository.PassRepository
	PointsRepo *repository.PointsRepository
	UserRepo   *repository.UserRepository
}

func NewGooglePassService(issuerID, classID, saEmail string, key *rsa.PrivateKey,
	db *gorm.DB, passRepo *repository.PassRepository,
	pointsRepo *repository.PointsRepository, userRepo *repository.UserRepository) *GooglePassService {
	return &GooglePassService{
		IssuerID: issuerID, ClassID: classID, SAEmail: saEmail, Key: key,
		DB: db, PassRepo: passRepo, PointsRepo: pointsRepo, UserRepo: userRepo,
	}
}

// LoadRSAKey reads the service-account private key from a PEM file.
func LoadRSAKey(path string) (*rsa.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.New("invalid key PEM")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA key")
	}
	return key, nil
}

func (s *GooglePassService) getOrIssue(userID uint) (*entity.WalletPass, error) {
	p, err := s.PassRepo.GetForUser(userID, entity.PassGoogle)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p = &entity.WalletPass{
		UserID:   userID,
		Platform: entity.PassGoogle,
		Serial:   uuid.NewString(),
	}
	if err := s.PassRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SaveURL mints a signed "save to Google Wallet" JWT embedding the loyalty
// object and returns the pay.google.com link.
func (s *GooglePassService) SaveURL(userID uint) (string, error) {
	if s.Key == nil {
		return "", ErrWalletNotConfigured
	}
	pass, err := s.getOrIssue(userID)
	if err != nil {
		return "", err
	}
	user, err := s.UserRepo.Get(userID)
	if err != nil {
		return "", err
	}
	balance, err := s.PointsRepo.Balance(s.DB, userID)
	if err != nil {
		return "", err
	}

	objectID := fmt.Sprintf("%s.%s", s.IssuerID, pass.Serial)
	claims := jwt.MapClaims{
		"iss": s.SAEmail,
		"aud": "google",
		"typ": "savetowallet",
		"iat": time.Now().Unix(),
		"payload": map[string]any{
			"loyaltyObjects": []map[string]any{
				{
					"id":            objectID,
					"classId":       fmt.Sprintf("%s.%s", s.IssuerID, s.ClassID),
					"state":         "ACTIVE",
					"accountId":     user.Email,
					"accountName":   strings.TrimSpace(user.FirstName + " " + user.LastName),
					"loyaltyPoints": map[string]any{"label": "Points", "balance": map[string]any{"int": balance}},
					"barcode":       map[string]any{"type": "QR_CODE", "value": pass.Serial},
				},
			},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.Key)
	if err != nil {
		return "", err
	}
	return googleSaveURLPrefix + signed, nil
}
