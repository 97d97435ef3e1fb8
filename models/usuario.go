package models

import "time"

// Usuario is an account identified by e-mail and tax document (CPF/CNPJ).
// The password hash is never serialized.
type Usuario struct {
	ID         uint                  `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time             `json:"-"`
	UpdatedAt  time.Time             `json:"-"`
	Nome       string                `gorm:"size:255;not null" json:"nome"`
	Email      string                `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha      string                `gorm:"size:255;not null" json:"-"`
	CpfCnpj    string                `gorm:"column:cpf_cnpj;size:18;uniqueIndex;not null" json:"cpf_cnpj"`
	Role       Role                  `gorm:"size:16;not null;default:user" json:"role"`
	Boletos    []Boleto              `gorm:"foreignKey:UsuarioID" json:"-"`
	Documentos []DocumentoAutorizado `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) IsAdmin() bool { return u.Role == RoleAdmin }
