package params

import (
	"strconv"
	"strings"
	"time"
)

// now is replaced in tests
var now = time.Now

// ResolveTransactionID returns the transaction id to send and writes it back
// to the store.
//
// When no id is set and order number auto-generation is enabled, an id is
// generated from the wall clock at microsecond precision. A configured order
// number prefix is prepended to a non-empty id and then cleared, so resolving
// again never applies it twice.
func (p *Parameters) ResolveTransactionID() string {
	id := p.TransactionID()
	prefix := p.OrderNumberPrefix()

	if id == "" && p.OrderNumberAutoGen() {
		id = strconv.FormatInt(now().UnixMicro(), 10)
	}

	if prefix != "" && id != "" {
		id = prefix + id
	}

	if id != "" {
		p.SetTransactionID(id)
	}
	p.SetOrderNumberPrefix("")

	return id
}

// TransactionCode is the gateway's bit field selecting optional processing
// for a transaction.
type TransactionCode int

const (
	TransactionCodeNone           TransactionCode = 0
	TransactionCodeAVSCheck       TransactionCode = 1
	TransactionCodeTokenizedCard  TransactionCode = 2
	TransactionCodeSinglePass     TransactionCode = 8
	TransactionCode3DS            TransactionCode = 64
	TransactionCodeRequestToken   TransactionCode = 128
	TransactionCodeHostedPage3DS  TransactionCode = 256
	TransactionCodeFraudCheckOnly TransactionCode = 512
	TransactionCodeFraudTest      TransactionCode = 1024
	TransactionCodeRecurring      TransactionCode = 2048
)

var transactionCodeNames = []struct {
	code TransactionCode
	name string
}{
	{TransactionCodeAVSCheck, "AVSCheck"},
	{TransactionCodeTokenizedCard, "TokenizedCard"},
	{TransactionCodeSinglePass, "SinglePass"},
	{TransactionCode3DS, "3DS"},
	{TransactionCodeRequestToken, "RequestToken"},
	{TransactionCodeHostedPage3DS, "HostedPage3DS"},
	{TransactionCodeFraudCheckOnly, "FraudCheckOnly"},
	{TransactionCodeFraudTest, "FraudTest"},
	{TransactionCodeRecurring, "Recurring"},
}

// With returns c with flag set
func (c TransactionCode) With(flag TransactionCode) TransactionCode {
	return c | flag
}

// Has reports whether flag is set in c
func (c TransactionCode) Has(flag TransactionCode) bool {
	return flag != 0 && c&flag == flag
}

// WireValue returns the decimal form sent to the gateway
func (c TransactionCode) WireValue() string {
	return strconv.Itoa(int(c))
}

func (c TransactionCode) String() string {
	if c == TransactionCodeNone {
		return "None"
	}
	var names []string
	rest := c
	for _, n := range transactionCodeNames {
		if c.Has(n.code) {
			names = append(names, n.name)
			rest &^= n.code
		}
	}
	if rest != 0 {
		names = append(names, strconv.Itoa(int(rest)))
	}
	return strings.Join(names, "|")
}
