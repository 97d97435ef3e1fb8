package main

import (
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
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/reset_password <email> <new-password>")
		os.Exit(2)
	}
	email := strings.ToLower(os.Args[1])
	senha := os.Args[2]

	dsn := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DATABASE_URL not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var user models.Usuario
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Fatalf("user %s not found", email)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	if err := db.Model(&user).Update("senha", string(hashed)).Error; err != nil {
		log.Fatalf("failed to update password: %v", err)
	}
	fmt.Printf("password reset for %s (id=%d)\n", user.Email, user.ID)
}
