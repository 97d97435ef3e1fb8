package main

import (
	"log"
	"os"
	"strings"

	"boletoapi/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set. This service requires a Postgres DSN in DATABASE_URL.")
	}
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := strings.ToLower(os.Getenv("DB_AUTO_MIGRATE")); v == "false" || v == "0" || v == "no" {
		shouldMigrate = false
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		if err := db.AutoMigrate(&models.Usuario{}); err != nil {
			log.Printf("migration warning (usuarios): %v", err)
		}
		if err := db.AutoMigrate(&models.Boleto{}); err != nil {
			log.Printf("migration warning (boletos): %v", err)
		}
		if err := db.AutoMigrate(&models.DocumentoAutorizado{}); err != nil {
			log.Printf("migration warning (documentos_autorizados): %v", err)
		}
	}
	seedAdmin()
}

// seedAdmin bootstraps the administrator account from ADMIN_* env vars so a
// fresh database is usable without manual SQL.
func seedAdmin() {
	var count int64
	db.Model(&models.Usuario{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}
	admin := models.Usuario{
		Nome:    cfg.AdminName,
		Email:   strings.ToLower(cfg.AdminEmail),
		Senha:   string(hashed),
		CpfCnpj: cfg.AdminDocument,
		Role:    models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user: email=%s", admin.Email)
}
