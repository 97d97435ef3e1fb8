package models

import "time"

// DocumentoAutorizado pre-authorizes a tax document to have boletos issued
// against it. A user may register several (e.g. a CPF plus a company CNPJ).
type DocumentoAutorizado struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time     `json:"-"`
	UpdatedAt  time.Time     `json:"-"`
	Tipo       TipoDocumento `gorm:"size:8;not null" json:"tipo"`
	Documento  string        `gorm:"size:18;index;not null" json:"documento"`
	Nome       string        `gorm:"size:255" json:"nome"`
	Registrado Date          `gorm:"type:date" json:"registrado"`
	UsuarioID  uint          `gorm:"index;not null" json:"usuario_id"`
}

func (DocumentoAutorizado) TableName() string { return "documentos_autorizados" }
