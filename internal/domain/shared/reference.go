package shared

import (
	"crypto/rand"
	"math/big"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PaymentReferenceLength is the fixed length of system-generated payment references
const PaymentReferenceLength = 15

// GenerateReference returns a random alphanumeric reference of the given
// length. References are generated once at creation and intended unique;
// the backing table carries a unique index as the actual guarantee.
func GenerateReference(length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		b[i] = referenceAlphabet[n.Int64()]
	}
	return string(b)
}

// GeneratePaymentReference returns a reference of the standard payment length
func GeneratePaymentReference() string {
	return GenerateReference(PaymentReferenceLength)
}
