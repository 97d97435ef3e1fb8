package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Role is the single source of truth for what a user may do.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status of a boleto. Stored and serialized as the Portuguese wire values.
type Status string

const (
	StatusPendente  Status = "pendente"
	StatusPago      Status = "pago"
	StatusCancelado Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusPago, StatusCancelado:
		return true
	}
	return false
}

// TipoDocumento distinguishes individual (CPF) from corporate (CNPJ) documents.
type TipoDocumento string

const (
	TipoCPF  TipoDocumento = "CPF"
	TipoCNPJ TipoDocumento = "CNPJ"
)

func (t TipoDocumento) Valid() bool {
	return t == TipoCPF || t == TipoCNPJ
}

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD on the wire and stored
// in a DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date{v}
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// JSONMap holds a free-form JSON object in a jsonb column.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}
	return json.Unmarshal(b, m)
}
