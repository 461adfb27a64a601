package services

import (
	"archive/zip"
	"bytes"
	"crypto"
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"go.mozilla.org/pkcs7"
	"gorm.io/gorm"
)

var ErrWalletNotConfigured = errors.New("wallet signing is not configured")

// ManifestSigner produces the detached PKCS#7 signature over manifest.json.
// Tests stub this; production uses the Apple-issued pass certificate.
type ManifestSigner interface {
	Sign(manifest []byte) ([]byte, error)
}

type PKCS7Signer struct {
	Cert *x509.Certificate
	Key  crypto.PrivateKey
}

func (s *PKCS7Signer) Sign(manifest []byte) ([]byte, error) {
	signed, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, err
	}
	signed.Detach()
	if err := signed.AddSigner(s.Cert, s.Key, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, err
	}
	return signed.Finish()
}

// LoadPKCS7Signer reads the pass certificate and private key from PEM files.
func LoadPKCS7Signer(certPath, keyPath string) (*PKCS7Signer, error) {
	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, err
	}
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, errors.New("invalid certificate PEM")
	}
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, err
	}
	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, errors.New("invalid key PEM")
	}
	key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, err
	}
	return &PKCS7Signer{Cert: cert, Key: key}, nil
}

// Minimal 1x1 transparent PNG, used for all required pass image slots until
// design assets land in the asset pipeline.
var passIconPNG, _ = hex.DecodeString(
	"89504e470d0a1a0a0000000d49484452000000010000000108060000001f15c4" +
		"890000000d4944415478da63fcffff3f0300050001ffa51d96480000000049454e44ae426082")

type ApplePassService struct {
	PassTypeID string
	TeamID     string
	OrgName    string
	Signer     ManifestSigner

	DB         *gorm.DB
	PassRepo   *repository.PassRepository
	PointsRepo *repository.PointsRepository
	UserRepo   *repository.UserRepository
}

func NewApplePassService(passTypeID, teamID, orgName string, signer ManifestSigner,
	db *gorm.DB, passRepo *repository.PassRepository,
	pointsRepo *repository.PointsRepository, userRepo *repository.UserRepository) *ApplePassService {
	return &ApplePassService{
		PassTypeID: passTypeID, TeamID: teamID, OrgName: orgName, Signer: signer,
		DB: db, PassRepo: passRepo, PointsRepo: pointsRepo, UserRepo: userRepo,
	}
}

// GetOrIssue returns the customer's Apple pass record, minting serial and
// auth token on first use.
func (s *ApplePassService) GetOrIssue(userID uint) (*entity.WalletPass, error) {
	p, err := s.PassRepo.GetForUser(userID, entity.PassApple)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p = &entity.WalletPass{
		UserID:    userID,
		Platform:  entity.PassApple,
		Serial:    uuid.NewString(),
		AuthToken: strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""),
	}
	if err := s.PassRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Build assembles the .pkpass archive: pass.json, image assets, a manifest of
// SHA-1 digests and the detached signature over that manifest.
func (s *ApplePassService) Build(pass *entity.WalletPass) ([]byte, error) {
	if s.Signer == nil {
		return nil, ErrWalletNotConfigured
	}
	user, err := s.UserRepo.Get(pass.UserID)
	if err != nil {
		return nil, err
	}
	balance, err := s.PointsRepo.Balance(s.DB, pass.UserID)
	if err != nil {
		return nil, err
	}

	passJSON, err := json.Marshal(map[string]any{
		"formatVersion":       1,
		"passTypeIdentifier":  s.PassTypeID,
		"teamIdentifier":      s.TeamID,
		"organizationName":    s.OrgName,
		"serialNumber":        pass.Serial,
		"authenticationToken": pass.AuthToken,
		"description":         "Loyalty card",
		"storeCard": map[string]any{
			"primaryFields": []map[string]any{
				{"key": "points", "label": "POINTS", "value": balance},
			},
			"secondaryFields": []map[string]any{
				{"key": "member", "label": "MEMBER", "value": strings.TrimSpace(user.FirstName + " " + user.LastName)},
			},
		},
		"barcode": map[string]any{
			"format":          "PKBarcodeFormatQR",
			"message":         pass.Serial,
			"messageEncoding": "iso-8859-1",
		},
	})
	if err != nil {
		return nil, err
	}

	files := map[string][]byte{
		"pass.json":   passJSON,
		"icon.png":    passIconPNG,
		"icon@2x.png": passIconPNG,
		"logo.png":    passIconPNG,
	}

	manifest := make(map[string]string, len(files))
	for name, data := range files {
		sum := sha1.Sum(data)
		manifest[name] = hex.EncodeToString(sum[:])
	}
	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return nil, err
	}
	signature, err := s.Signer.Sign(manifestJSON)
	if err != nil {
		return nil, fmt.Errorf("sign manifest: %w", err)
	}

	files["manifest.json"] = manifestJSON
	files["signature"] = signature

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	// fixed order keeps archives reproducible
	for _, name := range []string{"pass.json", "manifest.json", "signature", "icon.png", "icon@2x.png", "logo.png"} {
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ----- Apple Wallet web service protocol -----

func (s *ApplePassService) RegisterDevice(pass *entity.WalletPass, deviceLibraryID, pushToken string) error {
	return s.PassRepo.Register(pass.ID, deviceLibraryID, pushToken)
}

func (s *ApplePassService) UnregisterDevice(pass *entity.WalletPass, deviceLibraryID string) error {
	return s.PassRepo.Unregister(pass.ID, deviceLibraryID)
}

// Touch bumps updated_at so registered devices see the serial in their next
// updated-serials poll.
func (s *ApplePassService) Touch(pass *entity.WalletPass) error {
	return s.PassRepo.Touch(pass.ID)
}
