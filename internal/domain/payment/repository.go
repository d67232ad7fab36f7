package payment

import (
	"context"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentRepository is the persistence port for payments
type PaymentRepository interface {
	shared.OwnedRepository[Payment]
	FindByReference(ctx context.Context, reference string) (*Payment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Payment, error)
}

// SavedCardRepository is the persistence port for saved cards
type SavedCardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SavedCard, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*SavedCard, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]SavedCard, error)
	FindByAuthorizationCode(ctx context.Context, userID uuid.UUID, code string) (*SavedCard, error)
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Save(ctx context.Context, card *SavedCard) error
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// RecipientRepository is the persistence port for payout recipients.
// Reads exclude soft-deleted rows.
type RecipientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentRecipient, error)
	FindByAccount(ctx context.Context, accountNumber, bankCode string) (*PaymentRecipient, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentRecipient, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, recipient *PaymentRecipient) error
}

// TransferRepository is the persistence port for transfer payments
type TransferRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransferPayment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]TransferPayment, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, transfer *TransferPayment) error
}
