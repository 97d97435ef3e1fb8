package importar

import (
	"errors"
	"strings"
	"testing"
)

const header = "cpf_cnpj,valor,vencimento,status,historico\n"

func TestParseCSVGoodRows(t *testing.T) {
	in := header +
		`12345678901,150.75,2025-10-01,pendente,"{""origem"":""legado""}"` + "\n" +
		`98765432000199,2000,2024-01-15,pago,{}` + "\n"
	rows, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CpfCnpj != "12345678901" || rows[0].Valor != 150.75 {
		t.Fatalf("row 0 mismatch: %+v", rows[0])
	}
	if rows[0].Vencimento.String() != "2025-10-01" {
		t.Fatalf("expected vencimento 2025-10-01, got %s", rows[0].Vencimento)
	}
	if got, ok := rows[0].Historico["origem"].(string); !ok || got != "legado" {
		t.Fatalf("historico not decoded: %+v", rows[0].Historico)
	}
	if rows[1].Status != "pago" {
		t.Fatalf("expected status pago, got %s", rows[1].Status)
	}
}

func TestParseCSVRejectsBadRows(t *testing.T) {
	cases := []struct {
		name  string
		row   string
		field string
	}{
		{"bad date", "111,10.0,15/01/2024,pendente,{}", "vencimento"},
		{"non numeric valor", "111,dez,2024-01-15,pendente,{}", "valor"},
		{"zero valor", "111,0,2024-01-15,pendente,{}", "valor"},
		{"negative valor", "111,-5,2024-01-15,pendente,{}", "valor"},
		{"unknown status", "111,10.0,2024-01-15,atrasado,{}", "status"},
		{"historico not json", "111,10.0,2024-01-15,pendente,pago no banco", "historico"},
		{"empty document", ",10.0,2024-01-15,pendente,{}", "cpf_cnpj"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(header + tc.row + "\n"))
			var rerr *RowError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected RowError, got %v", err)
			}
			if rerr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, rerr.Field)
			}
			if rerr.Line != 2 {
				t.Fatalf("expected line 2, got %d", rerr.Line)
			}
		})
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	in := "cpf_cnpj,valor,vencimento,status\n111,10.0,2024-01-15,pendente\n"
	_, err := ParseCSV(strings.NewReader(in))
	var rerr *RowError
	if !errors.As(err, &rerr) || rerr.Field != "historico" {
		t.Fatalf("expected missing-column error for historico, got %v", err)
	}
}

func TestParseTXTWrapsHistorico(t *testing.T) {
	in := header + "12345678901,99.90,2024-06-30,cancelado,pago em cartório\n"
	rows, err := ParseTXT(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := rows[0].Historico["info"].(string); !ok || got != "pago em cartório" {
		t.Fatalf("expected wrapped historico, got %+v", rows[0].Historico)
	}
}

func TestParseTXTStillValidatesDate(t *testing.T) {
	in := header + "12345678901,99.90,30/06/2024,pendente,qualquer coisa\n"
	_, err := ParseTXT(strings.NewReader(in))
	var rerr *RowError
	if !errors.As(err, &rerr) || rerr.Field != "vencimento" {
		t.Fatalf("expected vencimento error, got %v", err)
	}
}

func TestParseCSVOptionalColumns(t *testing.T) {
	in := "cpf_cnpj,valor,vencimento,status,historico,nome_empresa,observacao\n" +
		"111,10.0,2024-01-15,pendente,{},Empresa X,pagar na agência\n"
	rows, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].NomeEmpresa != "Empresa X" || rows[0].Observacao != "pagar na agência" {
		t.Fatalf("optional columns not carried: %+v", rows[0])
	}
}
