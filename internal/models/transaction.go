package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string

const (
	Buy  TransactionType = "Buy"
	Sell TransactionType = "Sell"
)

func (t TransactionType) Valid() bool {
	return t == Buy || t == Sell
}

// Transaction is hard-deleted. PortfolioID and UserID are advisory
// references; nothing ties them to an existing, active Portfolio.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PortfolioID string             `bson:"portfolio_id"`
	UserID      string             `bson:"user_id"`
	Symbol      string             `bson:"symbol"`
	Quantity    decimal.Decimal    `bson:"quantity"`
	PricePaid   decimal.Decimal    `bson:"price_paid"`
	Date        time.Time          `bson:"date"`
	Type        TransactionType    `bson:"transaction_type"`
	Notes       string             `bson:"notes"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}
