package models

import (
	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for order payments
type PaymentModel struct {
	BaseModel
	Reference  string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	StatusID   uuid.UUID       `gorm:"type:uuid;not null"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	RefundMeta []byte          `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "fm_payment"
}

// ToDomain converts the persistence model to a domain Payment
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		BaseEntity: m.BaseModel.ToDomain(),
		Reference:  m.Reference,
		Total:      m.Total,
		UserID:     m.UserID,
		StatusID:   m.StatusID,
		OrderID:    m.OrderID,
		RefundMeta: m.RefundMeta,
	}
}

// PaymentModelFromDomain builds a persistence model from a domain Payment
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{
		Reference:  p.Reference,
		Total:      p.Total,
		UserID:     p.UserID,
		StatusID:   p.StatusID,
		OrderID:    p.OrderID,
		RefundMeta: p.RefundMeta,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// SavedCardModel is the persistence model for reusable card authorizations
type SavedCardModel struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_card_user_auth"`
	AuthorizationCode string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_saved_card_user_auth"`
	Bin               string    `gorm:"type:varchar(10)"`
	Last4             string    `gorm:"type:varchar(4)"`
	ExpMonth          string    `gorm:"type:varchar(2)"`
	ExpYear           string    `gorm:"type:varchar(4)"`
	CardType          string    `gorm:"type:varchar(30)"`
	Bank              string    `gorm:"type:varchar(100)"`
	CountryCode       string    `gorm:"type:varchar(2)"`
	Brand             string    `gorm:"type:varchar(30)"`
	Reusable          bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (SavedCardModel) TableName() string {
	return "fm_saved_card"
}

// ToDomain converts the persistence model to a domain SavedCard
func (m *SavedCardModel) ToDomain() *payment.SavedCard {
	return &payment.SavedCard{
		BaseEntity:        m.BaseModel.ToDomain(),
		UserID:            m.UserID,
		AuthorizationCode: m.AuthorizationCode,
		Bin:               m.Bin,
		Last4:             m.Last4,
		ExpMonth:          m.ExpMonth,
		ExpYear:           m.ExpYear,
		CardType:          m.CardType,
		Bank:              m.Bank,
		CountryCode:       m.CountryCode,
		Brand:             m.Brand,
		Reusable:          m.Reusable,
	}
}

// SavedCardModelFromDomain builds a persistence model from a domain SavedCard
func SavedCardModelFromDomain(c *payment.SavedCard) *SavedCardModel {
	m := &SavedCardModel{
		UserID:            c.UserID,
		AuthorizationCode: c.AuthorizationCode,
		Bin:               c.Bin,
		Last4:             c.Last4,
		ExpMonth:          c.ExpMonth,
		ExpYear:           c.ExpYear,
		CardType:          c.CardType,
		Bank:              c.Bank,
		CountryCode:       c.CountryCode,
		Brand:             c.Brand,
		Reusable:          c.Reusable,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// PaymentRecipientModel is the persistence model for payout recipients.
// Rows are soft-deleted so historical transfers keep their reference.
type PaymentRecipientModel struct {
	BaseModel
	Type          string    `gorm:"type:varchar(20);not null"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Currency      string    `gorm:"type:varchar(3);not null"`
	AccountNumber string    `gorm:"type:varchar(20);not null"`
	BankCode      string    `gorm:"type:varchar(10);not null"`
	RecipientCode string    `gorm:"type:varchar(100)"`
	StatusID      uuid.UUID `gorm:"type:uuid;not null"`
	IsDeleted     bool      `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (PaymentRecipientModel) TableName() string {
	return "fm_payment_recipient"
}

// ToDomain converts the persistence model to a domain PaymentRecipient
func (m *PaymentRecipientModel) ToDomain() *payment.PaymentRecipient {
	return &payment.PaymentRecipient{
		BaseEntity:    m.BaseModel.ToDomain(),
		Type:          m.Type,
		Name:          m.Name,
		Currency:      m.Currency,
		AccountNumber: m.AccountNumber,
		BankCode:      m.BankCode,
		RecipientCode: m.RecipientCode,
		StatusID:      m.StatusID,
		IsDeleted:     m.IsDeleted,
	}
}

// PaymentRecipientModelFromDomain builds a persistence model from a domain PaymentRecipient
func PaymentRecipientModelFromDomain(r *payment.PaymentRecipient) *PaymentRecipientModel {
	m := &PaymentRecipientModel{
		Type:          r.Type,
		Name:          r.Name,
		Currency:      r.Currency,
		AccountNumber: r.AccountNumber,
		BankCode:      r.BankCode,
		RecipientCode: r.RecipientCode,
		StatusID:      r.StatusID,
		IsDeleted:     r.IsDeleted,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// TransferPaymentModel is the persistence model for payouts to recipients
type TransferPaymentModel struct {
	BaseModel
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	Source       string          `gorm:"type:varchar(20);not null"`
	Reason       string          `gorm:"type:varchar(255)"`
	RecipientID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransferCode string          `gorm:"type:varchar(100)"`
	StatusID     uuid.UUID       `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (TransferPaymentModel) TableName() string {
	return "fm_transfer_payment"
}

// ToDomain converts the persistence model to a domain TransferPayment
func (m *TransferPaymentModel) ToDomain() *payment.TransferPayment {
	return &payment.TransferPayment{
		BaseEntity:   m.BaseModel.ToDomain(),
		Amount:       m.Amount,
		Currency:     m.Currency,
		Source:       m.Source,
		Reason:       m.Reason,
		RecipientID:  m.RecipientID,
		TransferCode: m.TransferCode,
		StatusID:     m.StatusID,
	}
}

// TransferPaymentModelFromDomain builds a persistence model from a domain TransferPayment
func TransferPaymentModelFromDomain(t *payment.TransferPayment) *TransferPaymentModel {
	m := &TransferPaymentModel{
		Amount:       t.Amount,
		Currency:     t.Currency,
		Source:       t.Source,
		Reason:       t.Reason,
		RecipientID:  t.RecipientID,
		TransferCode: t.TransferCode,
		StatusID:     t.StatusID,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}
