package main

import (
	"fmt"
	"strings"
	"time"

	"boletoapi/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerRequest struct {
	Nome    string `json:"nome" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Senha   string `json:"senha" binding:"required,min=6"`
	CpfCnpj string `json:"cpf_cnpj" binding:"required"`
}

// registerUser creates a regular user. Both e-mail and document must be new.
func registerUser(req registerRequest) (*models.Usuario, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	doc := strings.TrimSpace(req.CpfCnpj)

	var existing models.Usuario
	if err := db.Where("email = ? OR cpf_cnpj = ?", email, doc).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: usuário já existe", ErrDuplicate)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.Usuario{
		Nome:    strings.TrimSpace(req.Nome),
		Email:   email,
		Senha:   string(hashed),
		CpfCnpj: doc,
		Role:    models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race after the initial check
			return nil, fmt.Errorf("%w: usuário já existe", ErrDuplicate)
		}
		return nil, err
	}
	return &user, nil
}

// authenticate verifies e-mail + password. Unknown e-mail and wrong password
// fail identically so accounts cannot be enumerated.
func authenticate(email, senha string) (*models.Usuario, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	var user models.Usuario
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return nil, ErrCredentials
	}
	return &user, nil
}

// createAccessToken mints a signed token carrying the user's e-mail as subject.
func createAccessToken(cfg Config, email string) (string, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return "", fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(cfg.TokenTTL).Unix(),
	})
	return token.SignedString([]byte(cfg.SecretKey))
}

// parseAccessToken verifies signature and expiry and returns the subject.
func parseAccessToken(cfg Config, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", ErrCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrCredentials
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrCredentials
	}
	return sub, nil
}

// resolveUser turns a verified subject claim into a user record.
func resolveUser(gdb *gorm.DB, email string) (*models.Usuario, error) {
	var user models.Usuario
	if err := gdb.Where("email = ?", email).First(&user).Error; err != nil {
		// Same failure as a bad token: do not reveal which check failed.
		return nil, ErrCredentials
	}
	return &user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
