package transaction

import (
	"time"

	"github.com/Teru3301/FinanceApp/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Type        string `json:"type" doc:"income or expense"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Category    string `json:"category" doc:"Category label"`
	Description string `json:"description" doc:"Free-form description"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	EcoImpact   string `json:"ecoImpact" doc:"Derived eco impact, decimal"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Type:        tx.Type,
		Amount:      tx.Amount.String(),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		EcoImpact:   tx.EcoImpact.String(),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
