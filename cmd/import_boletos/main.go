// Bulk-imports a boleto file straight into the database, bypassing the HTTP
// surface. Same parsing and all-or-nothing semantics as the upload endpoints.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"boletoapi/models"
	"boletoapi/pkg/importar"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "e-mail of the admin the batch is attributed to")
	flag.Parse()
	if flag.NArg() != 1 || *email == "" {
		fmt.Println("usage: go run ./cmd/import_boletos -email admin@example.com <file.csv|file.txt>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	var parse func(io.Reader) ([]importar.Row, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		parse = importar.ParseCSV
	case ".txt":
		parse = importar.ParseTXT
	default:
		log.Fatalf("unsupported file extension on %s (want .csv or .txt)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("cannot open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := parse(f)
	if err != nil {
		log.Fatalf("file rejected: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DATABASE_URL not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var admin models.Usuario
	if err := db.Where("email = ?", strings.ToLower(*email)).First(&admin).Error; err != nil {
		log.Fatalf("user %s not found", *email)
	}
	if !admin.IsAdmin() {
		log.Fatalf("user %s is not an administrator", admin.Email)
	}

	lote := uuid.NewString()
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			boleto := models.Boleto{
				UsuarioID:   &admin.ID,
				CpfCnpj:     row.CpfCnpj,
				NomeEmpresa: row.NomeEmpresa,
				Valor:       row.Valor,
				Vencimento:  row.Vencimento,
				Status:      row.Status,
				Observacao:  row.Observacao,
				Historico:   row.Historico,
				LoteID:      lote,
			}
			if err := tx.Create(&boleto).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("import rolled back: %v", err)
	}
	fmt.Printf("imported %d boletos (lote=%s)\n", len(rows), lote)
}
