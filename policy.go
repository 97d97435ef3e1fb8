package main

import "boletoapi/models"

// Authorization rules in one place instead of ad hoc conditionals per
// handler. Ownership is decided by the boleto's cpf_cnpj column matching the
// caller's document; usuario_id records provenance and is never consulted.

// canReadBoleto: admins read anything, users only their own document's slips.
func canReadBoleto(u *models.Usuario, b *models.Boleto) bool {
	return u.IsAdmin() || b.CpfCnpj == u.CpfCnpj
}

// canMutateBoletos covers create, full/partial update, delete and import.
func canMutateBoletos(u *models.Usuario) bool {
	return u.IsAdmin()
}

// canListAllBoletos gates the joined admin listing.
func canListAllBoletos(u *models.Usuario) bool {
	return u.IsAdmin()
}
