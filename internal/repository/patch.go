package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"whaleportfolio/internal/models"
)

// PortfolioPatch carries the optional fields of a portfolio update. A nil
// field leaves the stored value unchanged; UpdatedAt is refreshed by the
// storage layer regardless.
type PortfolioPatch struct {
	Name        *string
	Description *string
}

// TransactionPatch carries the six independently optional fields of a
// transaction update.
type TransactionPatch struct {
	Symbol    *string
	Quantity  *decimal.Decimal
	PricePaid *decimal.Decimal
	Date      *time.Time
	Type      *models.TransactionType
	Notes     *string
}

// PatchField is one entry of a patch's known field set. Storage
// implementations walk the set once and apply every present value.
type PatchField struct {
	Key     string
	Value   any
	Present bool
}

func field[T any](key string, v *T) PatchField {
	f := PatchField{Key: key}
	if v != nil {
		f.Value = *v
		f.Present = true
	}
	return f
}

func (p PortfolioPatch) Fields() []PatchField {
	return []PatchField{
		field("name", p.Name),
		field("description", p.Description),
	}
}

func (p TransactionPatch) Fields() []PatchField {
	return []PatchField{
		field("symbol", p.Symbol),
		field("quantity", p.Quantity),
		field("price_paid", p.PricePaid),
		field("date", p.Date),
		field("transaction_type", p.Type),
		field("notes", p.Notes),
	}
}
