package models

import "time"

// Boleto is a payable slip. Ownership for authorization purposes is the
// cpf_cnpj column; UsuarioID only records who created or imported the record.
type Boleto struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	UsuarioID   *uint     `gorm:"index" json:"usuario_id,omitempty"`
	CpfCnpj     string    `gorm:"column:cpf_cnpj;size:18;index;not null" json:"cpf_cnpj"`
	NomeEmpresa string    `gorm:"size:255" json:"nome_empresa,omitempty"`
	Valor       float64   `gorm:"not null" json:"valor"`
	Vencimento  Date      `gorm:"type:date;not null" json:"vencimento"`
	Status      Status    `gorm:"size:16;not null" json:"status"`
	Observacao  string    `gorm:"size:512" json:"observacao,omitempty"`
	Historico   JSONMap   `gorm:"type:jsonb" json:"historico"`
	// LoteID groups all boletos committed by one bulk import.
	LoteID  string   `gorm:"size:36;index" json:"lote_id,omitempty"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}

func (Boleto) TableName() string { return "boletos" }
