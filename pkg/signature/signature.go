// Package signature computes the request signature the gateway requires for
// authorization-type operations.
//
// The signature is the base64 encoding of the raw SHA-1 digest of
//
//	password + merchant id + acquirer id + transaction id + amount + currency
//
// concatenated without separators, where amount is the minor-unit amount
// left-padded with zeros to 12 digits and currency is the 3-digit ISO 4217
// numeric code.
package signature

import (
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/params"
)

// AmountWidth is the fixed width of an amount on the wire
const AmountWidth = 12

var (
	// ErrAmountTooLong is returned for amounts wider than AmountWidth digits
	ErrAmountTooLong = errors.New("amount exceeds 12 digits")

	// ErrNegativeAmount is returned for amounts below zero
	ErrNegativeAmount = errors.New("amount is negative")

	// ErrAmountRequired is returned when a signed operation has no amount
	ErrAmountRequired = errors.New("amount is required")

	// ErrUnsupportedMethod is returned for signature methods other than SHA1
	ErrUnsupportedMethod = errors.New("unsupported signature method")
)

// AmountForWire formats a minor-unit amount as a zero-padded 12 digit string
func AmountForWire(amount int64) (string, error) {
	if amount < 0 {
		return "", ErrNegativeAmount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) > AmountWidth {
		return "", fmt.Errorf("%w: %s", ErrAmountTooLong, s)
	}
	return strings.Repeat("0", AmountWidth-len(s)) + s, nil
}

// Compute returns the base64 SHA-1 signature over the concatenated inputs.
// amount and currency must already be in wire form.
func Compute(password, merchantID, acquirerID, transactionID, amount, currency string) string {
	h := sha1.New()
	h.Write([]byte(password))
	h.Write([]byte(merchantID))
	h.Write([]byte(acquirerID))
	h.Write([]byte(transactionID))
	h.Write([]byte(amount))
	h.Write([]byte(currency))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Sign computes the signature for op from p and stores it back into p.
// Operations that are not signed clear any stored signature. The store is
// returned for chaining.
func Sign(op message.Operation, p *params.Parameters) (*params.Parameters, error) {
	if !op.RequiresSignature() {
		return p.SetSignature(""), nil
	}

	if method := p.SignatureMethod(); method != params.SignatureMethodSHA1 {
		return p, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	amount, ok := p.AmountInteger()
	if !ok {
		return p, ErrAmountRequired
	}

	wireAmount, err := AmountForWire(amount)
	if err != nil {
		return p, fmt.Errorf("signing %s: %w", op, err)
	}

	sig := Compute(
		p.Password(),
		p.FacID(),
		p.AcquirerID(),
		p.ResolveTransactionID(),
		wireAmount,
		p.CurrencyNumeric(),
	)

	return p.SetSignature(sig), nil
}
