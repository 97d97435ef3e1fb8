package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestOrderColumnFallsBackToVencimento(t *testing.T) {
	cases := map[string]string{
		"valor":      "valor",
		"status":     "status",
		"cpf_cnpj":   "cpf_cnpj",
		"vencimento": "vencimento",
		"":           "vencimento",
		"id; drop":   "vencimento",
		"anything":   "vencimento",
	}
	for in, want := range cases {
		if got := orderColumn(in); got != want {
			t.Fatalf("orderColumn(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/boletos?skip=-3&limit=0", nil)
	skip, limit := parsePagination(c)
	if skip != 0 || limit != 10 {
		t.Fatalf("expected defaults 0/10 for out-of-range values, got %d/%d", skip, limit)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/boletos?skip=20&limit=5", nil)
	skip, limit = parsePagination(c)
	if skip != 20 || limit != 5 {
		t.Fatalf("expected 20/5, got %d/%d", skip, limit)
	}
}
