package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// OrderClause builds a validated ORDER BY expression with an id tiebreak
// so paginated listings are stable.
func OrderClause(orderBy, orderDir string, allowedFields map[string]bool, defaultField string) string {
	field := ValidateSortField(orderBy, allowedFields, defaultField)
	dir := ValidateSortOrder(orderDir)
	if field == "id" {
		return "id " + dir
	}
	return field + " " + dir + ", id " + dir
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// NameSortFields contains allowed sort fields for name lookup tables
// (countries, states, statuses)
var NameSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"email":       true,
	"first_name":  true,
	"last_name":   true,
	"is_verified": true,
	"is_active":   true,
}

// AddressSortFields contains allowed sort fields for shipping addresses
var AddressSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"street":     true,
	"city":       true,
	"zipcode":    true,
}

// SellingUnitSortFields contains allowed sort fields for selling units
var SellingUnitSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"size":       true,
	"price":      true,
}

// PaymentSortFields contains allowed sort fields for payments
var PaymentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"reference":  true,
	"total":      true,
}

// SavedCardSortFields contains allowed sort fields for saved cards
var SavedCardSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"bank":       true,
	"brand":      true,
	"card_type":  true,
}

// RecipientSortFields contains allowed sort fields for payout recipients
var RecipientSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"account_number": true,
	"bank_code":      true,
}

// TransferSortFields contains allowed sort fields for transfer payments
var TransferSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"amount":     true,
	"currency":   true,
}
