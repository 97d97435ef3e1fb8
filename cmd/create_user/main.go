package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"boletoapi/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	nome := flag.String("nome", "", "display name")
	email := flag.String("email", "", "login e-mail")
	senha := flag.String("senha", "", "password")
	doc := flag.String("cpf-cnpj", "", "tax document")
	role := flag.String("role", "user", "role: user or admin")
	flag.Parse()

	if *email == "" || *senha == "" || *doc == "" {
		fmt.Println("usage: go run ./cmd/create_user -email a@b.c -senha secret -cpf-cnpj 123... [-nome Nome] [-role admin]")
		os.Exit(2)
	}
	r := models.Role(*role)
	if r != models.RoleAdmin && r != models.RoleUser {
		log.Fatalf("unknown role %q", *role)
	}

	dsn := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DATABASE_URL not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var existing models.Usuario
	if err := db.Where("email = ? OR cpf_cnpj = ?", strings.ToLower(*email), *doc).First(&existing).Error; err == nil {
		fmt.Printf("user already exists (id=%d email=%s)\n", existing.ID, existing.Email)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	user := models.Usuario{
		Nome:    *nome,
		Email:   strings.ToLower(*email),
		Senha:   string(hashed),
		CpfCnpj: *doc,
		Role:    r,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%d role=%s\n", user.Email, user.ID, user.Role)
}
