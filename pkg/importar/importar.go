// Package importar parses delimited boleto files (CSV/TXT uploads) into rows
// ready for a single-transaction batch insert. Parsing is strict: any
// malformed row fails the whole file so imports stay all-or-nothing.
package importar

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"boletoapi/models"
)

// HistoricoShape selects how the historico column is interpreted.
type HistoricoShape int

const (
	// HistoricoJSON requires the column to be a JSON object (CSV uploads).
	HistoricoJSON HistoricoShape = iota
	// HistoricoWrapped wraps the raw column value as {"info": value} (TXT uploads).
	HistoricoWrapped
)

var requiredColumns = []string{"cpf_cnpj", "valor", "vencimento", "status", "historico"}

// Row is one parsed boleto line.
type Row struct {
	CpfCnpj     string
	NomeEmpresa string
	Valor       float64
	Vencimento  models.Date
	Status      models.Status
	Observacao  string
	Historico   models.JSONMap
}

// ParseCSV parses the strict shape: historico must be an embedded JSON object.
func ParseCSV(r io.Reader) ([]Row, error) {
	return parse(r, HistoricoJSON)
}

// ParseTXT parses the loose shape: historico is kept verbatim under "info".
func ParseTXT(r io.Reader) ([]Row, error) {
	return parse(r, HistoricoWrapped)
}

func parse(r io.Reader, shape HistoricoShape) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &RowError{Line: 1, Reason: "cabeçalho ausente ou ilegível"}
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &RowError{Line: 1, Field: name, Reason: "coluna obrigatória ausente"}
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &RowError{Line: line, Reason: "linha malformada"}
		}
		row, rerr := parseRecord(record, cols, shape, line)
		if rerr != nil {
			return nil, rerr
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(record []string, cols map[string]int, shape HistoricoShape, line int) (Row, *RowError) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var row Row

	row.CpfCnpj = field("cpf_cnpj")
	if row.CpfCnpj == "" {
		return row, &RowError{Line: line, Field: "cpf_cnpj", Reason: "vazio"}
	}

	valor, err := strconv.ParseFloat(field("valor"), 64)
	if err != nil {
		return row, &RowError{Line: line, Field: "valor", Reason: "não é um número"}
	}
	if valor <= 0 {
		return row, &RowError{Line: line, Field: "valor", Reason: "deve ser maior que zero"}
	}
	row.Valor = valor

	venc, err := models.ParseDate(field("vencimento"))
	if err != nil {
		return row, &RowError{Line: line, Field: "vencimento", Reason: "data inválida (esperado AAAA-MM-DD)"}
	}
	row.Vencimento = venc

	row.Status = models.Status(field("status"))
	if !row.Status.Valid() {
		return row, &RowError{Line: line, Field: "status", Reason: "status desconhecido"}
	}

	historico := field("historico")
	switch shape {
	case HistoricoJSON:
		var m models.JSONMap
		if err := json.Unmarshal([]byte(historico), &m); err != nil {
			return row, &RowError{Line: line, Field: "historico", Reason: "não é um objeto JSON"}
		}
		row.Historico = m
	case HistoricoWrapped:
		row.Historico = models.JSONMap{"info": historico}
	}

	// Optional columns carried when present.
	row.NomeEmpresa = field("nome_empresa")
	row.Observacao = field("observacao")

	return row, nil
}
