package request

import (
	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/usecase/commands"
)

type UpdateTransactionRequest struct {
	Statut *string `json:"statut,omitempty"`
	Etat   *string `json:"etat,omitempty"`
}

func (r UpdateTransactionRequest) ToInput() commands.UpdateTransactionInput {
	var in commands.UpdateTransactionInput
	if r.Statut != nil {
		s := transaction.Status(*r.Statut)
		in.Statut = &s
	}
	if r.Etat != nil {
		e := payment.State(*r.Etat)
		in.Etat = &e
	}
	return in
}
