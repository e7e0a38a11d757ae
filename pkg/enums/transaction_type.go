package enums

import "fmt"

// TransactionType marks the direction of an inventory ledger entry.
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "in"
	TransactionTypeOut TransactionType = "out"
)

// String implements fmt.Stringer.
func (t TransactionType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TransactionType.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIn || t == TransactionTypeOut
}

// ParseTransactionType converts raw input into a TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(value) {
	case TransactionTypeIn:
		return TransactionTypeIn, nil
	case TransactionTypeOut:
		return TransactionTypeOut, nil
	}
	return "", fmt.Errorf("invalid transaction type %q", value)
}
