package main

import (
	"fmt"
	"io"
	"net/http"

	"boletoapi/models"
	"boletoapi/pkg/importar"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// importCSVHandler ingests the strict shape (historico is embedded JSON).
func importCSVHandler(c *gin.Context) {
	importUploadHandler(c, importar.ParseCSV)
}

// importTXTHandler ingests the loose shape (historico wrapped verbatim).
func importTXTHandler(c *gin.Context) {
	importUploadHandler(c, importar.ParseTXT)
}

func importUploadHandler(c *gin.Context, parse func(io.Reader) ([]importar.Row, error)) {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		respondError(c, fmt.Errorf("%w: arquivo ausente", ErrValidation))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		respondError(c, err)
		return
	}
	lote, err := importBoletos(currentUser(c), rows)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mensagem":   fmt.Sprintf("%d boletos importados com sucesso.", len(rows)),
		"importados": len(rows),
		"lote":       lote,
	})
}

// importBoletos commits every row in one transaction tagged with a fresh
// lote id; any failure rolls the whole batch back.
func importBoletos(user *models.Usuario, rows []importar.Row) (string, error) {
	lote := uuid.NewString()
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if cfg.EnforceAuthorizedDocs {
				if err := ensureAuthorizedDocument(tx, row.CpfCnpj); err != nil {
					return err
				}
			}
			boleto := models.Boleto{
				UsuarioID:   &user.ID,
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
		return "", err
	}
	boletosImported.Add(float64(len(rows)))
	return lote, nil
}
