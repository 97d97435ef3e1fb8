package main

import (
	"testing"

	"boletoapi/models"
)

func TestCanReadBoleto(t *testing.T) {
	admin := &models.Usuario{CpfCnpj: "000", Role: models.RoleAdmin}
	owner := &models.Usuario{CpfCnpj: "111", Role: models.RoleUser}
	stranger := &models.Usuario{CpfCnpj: "222", Role: models.RoleUser}
	boleto := &models.Boleto{CpfCnpj: "111"}

	if !canReadBoleto(admin, boleto) {
		t.Fatal("admin must read any boleto")
	}
	if !canReadBoleto(owner, boleto) {
		t.Fatal("document owner must read their own boleto")
	}
	if canReadBoleto(stranger, boleto) {
		t.Fatal("non-owner must not read another document's boleto")
	}
}

func TestOnlyAdminsMutate(t *testing.T) {
	admin := &models.Usuario{Role: models.RoleAdmin}
	user := &models.Usuario{Role: models.RoleUser}

	if !canMutateBoletos(admin) || !canListAllBoletos(admin) {
		t.Fatal("admin must be allowed to mutate and list all")
	}
	if canMutateBoletos(user) || canListAllBoletos(user) {
		t.Fatal("regular user must not mutate or list all")
	}
}

func TestOwnershipIgnoresUsuarioID(t *testing.T) {
	// Provenance (who imported the slip) must not grant access.
	importer := &models.Usuario{ID: 7, CpfCnpj: "333", Role: models.RoleUser}
	id := importer.ID
	boleto := &models.Boleto{UsuarioID: &id, CpfCnpj: "444"}
	if canReadBoleto(importer, boleto) {
		t.Fatal("usuario_id must not be consulted by the read policy")
	}
}
