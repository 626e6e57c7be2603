package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is a catalog entry referencing exactly one Upload plus
// descriptive metadata and a price. Write-once like Upload.
type Book struct {
	ID       uuid.UUID       `json:"id"`
	UploadID uuid.UUID       `json:"upload_id"`
	BookName string          `json:"book_name"`
	Author   string          `json:"author"`
	Summary  string          `json:"summary"`
	Price    decimal.Decimal `json:"price"`
}
