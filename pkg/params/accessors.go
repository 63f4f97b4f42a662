package params

import (
	"net"
	"strconv"

	"github.com/sirosfoundation/go-fac/pkg/threeds"
)

// Parameter keys
const (
	KeyFacID              = "facId"
	KeyPassword           = "facPwd"
	KeyAcquirerID         = "facAcquirer"
	KeyTransactionID      = "transactionId"
	KeyAmount             = "amount"
	KeyCurrency           = "currency"
	KeyCurrencyNumeric    = "currencyNumeric"
	KeyTestMode           = "testMode"
	KeyCacheRequest       = "cacheRequest"
	KeyCacheTransaction   = "cacheTransaction"
	KeySignature          = "Signature"
	KeySignatureMethod    = "SignatureMethod"
	KeyOrderNumberPrefix  = "orderNumberPrefix"
	KeyOrderNumberAutoGen = "orderNumberAutoGen"
	KeyTransactionCode    = "TransactionCode"
	KeyCustomerReference  = "CustomerReference"
	KeyClientIP           = "clientIp"
	KeyCustomDataTax      = "CustomDataTax"
	KeyThreeDSecure       = "ThreeDSecureDetails"
)

// SignatureMethodSHA1 is the only signature method the gateway accepts
const SignatureMethodSHA1 = "SHA1"

// customDataTaxPrefix marks tax data inside the gateway's custom data field
const customDataTaxPrefix = "|TX"

func (p *Parameters) SetFacID(id string) *Parameters { return p.Set(KeyFacID, id) }
func (p *Parameters) FacID() string                  { return p.String(KeyFacID) }

func (p *Parameters) SetPassword(pwd string) *Parameters { return p.Set(KeyPassword, pwd) }
func (p *Parameters) Password() string                   { return p.String(KeyPassword) }

func (p *Parameters) SetAcquirerID(id string) *Parameters { return p.Set(KeyAcquirerID, id) }
func (p *Parameters) AcquirerID() string                  { return p.String(KeyAcquirerID) }

// SetTransactionID stores the transaction id verbatim. Use
// ResolveTransactionID to obtain the id that is actually sent.
func (p *Parameters) SetTransactionID(id string) *Parameters { return p.Set(KeyTransactionID, id) }

// TransactionID returns the stored transaction id without resolving it
func (p *Parameters) TransactionID() string { return p.String(KeyTransactionID) }

// SetAmountInteger stores the amount in minor units (cents)
func (p *Parameters) SetAmountInteger(amount int64) *Parameters { return p.Set(KeyAmount, amount) }

// AmountInteger returns the amount in minor units and whether one is set
func (p *Parameters) AmountInteger() (int64, bool) { return p.Int64(KeyAmount) }

// SetCurrency stores the ISO 4217 alphabetic currency code
func (p *Parameters) SetCurrency(code string) *Parameters { return p.Set(KeyCurrency, code) }
func (p *Parameters) Currency() string                    { return p.String(KeyCurrency) }

// SetCurrencyNumeric stores an explicit ISO 4217 numeric code, taking
// precedence over the alphabetic code.
func (p *Parameters) SetCurrencyNumeric(code string) *Parameters {
	return p.Set(KeyCurrencyNumeric, code)
}

// CurrencyNumeric returns the 3-digit numeric currency code the gateway
// expects. Two-digit codes are left-padded with a single zero; an unknown
// alphabetic code yields "".
func (p *Parameters) CurrencyNumeric() string {
	code := p.String(KeyCurrencyNumeric)
	if code == "" {
		if n, ok := NumericCurrency(p.Currency()); ok {
			code = strconv.Itoa(n)
		}
	}
	if len(code) == 2 {
		return "0" + code
	}
	return code
}

func (p *Parameters) SetTestMode(v bool) *Parameters { return p.Set(KeyTestMode, v) }
func (p *Parameters) TestMode() bool                 { return p.Bool(KeyTestMode) }

// SetCacheRequest toggles persisting outbound request documents
func (p *Parameters) SetCacheRequest(v bool) *Parameters { return p.Set(KeyCacheRequest, v) }
func (p *Parameters) CacheRequest() bool                 { return p.Bool(KeyCacheRequest) }

// SetCacheTransaction toggles persisting inbound response documents
func (p *Parameters) SetCacheTransaction(v bool) *Parameters {
	return p.Set(KeyCacheTransaction, v)
}
func (p *Parameters) CacheTransaction() bool { return p.Bool(KeyCacheTransaction) }

// SetSignature stores the signature. An empty signature clears it.
func (p *Parameters) SetSignature(sig string) *Parameters {
	if sig == "" {
		return p.Set(KeySignature, nil)
	}
	return p.Set(KeySignature, sig)
}

// Signature returns the stored signature, or "" when none applies
func (p *Parameters) Signature() string { return p.String(KeySignature) }

func (p *Parameters) SetSignatureMethod(method string) *Parameters {
	return p.Set(KeySignatureMethod, method)
}

// SignatureMethod returns the signature method, storing the SHA1 default
// first if none was set.
func (p *Parameters) SignatureMethod() string {
	if p.String(KeySignatureMethod) == "" {
		p.SetSignatureMethod(SignatureMethodSHA1)
	}
	return p.String(KeySignatureMethod)
}

func (p *Parameters) SetOrderNumberPrefix(prefix string) *Parameters {
	return p.Set(KeyOrderNumberPrefix, prefix)
}
func (p *Parameters) OrderNumberPrefix() string { return p.String(KeyOrderNumberPrefix) }

// SetOrderNumberAutoGen enables generating a transaction id when none is set
func (p *Parameters) SetOrderNumberAutoGen(v bool) *Parameters {
	return p.Set(KeyOrderNumberAutoGen, v)
}
func (p *Parameters) OrderNumberAutoGen() bool { return p.Bool(KeyOrderNumberAutoGen) }

func (p *Parameters) SetTransactionCode(code TransactionCode) *Parameters {
	return p.Set(KeyTransactionCode, code)
}

// TransactionCode returns the stored transaction code, or TransactionCodeNone
func (p *Parameters) TransactionCode() TransactionCode {
	switch v := p.Get(KeyTransactionCode).(type) {
	case TransactionCode:
		return v
	case int:
		return TransactionCode(v)
	default:
		if n, ok := p.Int64(KeyTransactionCode); ok {
			return TransactionCode(n)
		}
		return TransactionCodeNone
	}
}

func (p *Parameters) SetCustomerReference(ref string) *Parameters {
	return p.Set(KeyCustomerReference, ref)
}
func (p *Parameters) CustomerReference() string { return p.String(KeyCustomerReference) }

// SetClientIP stores the card holder's IP address. Values that do not parse
// as an IPv4 or IPv6 address are ignored.
func (p *Parameters) SetClientIP(ip string) *Parameters {
	if net.ParseIP(ip) == nil {
		return p
	}
	return p.Set(KeyClientIP, ip)
}
func (p *Parameters) ClientIP() string { return p.String(KeyClientIP) }

// SetCustomDataTax stores tax data in the gateway's custom data format
func (p *Parameters) SetCustomDataTax(tax string) *Parameters {
	return p.Set(KeyCustomDataTax, customDataTaxPrefix+tax)
}
func (p *Parameters) CustomDataTax() string { return p.String(KeyCustomDataTax) }

// SetThreeDSecureDetails builds the 3-D Secure value object from details and
// stores it.
func (p *Parameters) SetThreeDSecureDetails(details map[string]any) (*Parameters, error) {
	tds, err := threeds.New(details)
	if err != nil {
		return p, err
	}
	return p.Set(KeyThreeDSecure, tds), nil
}

// ThreeDSecureDetails returns the stored 3-D Secure details, or nil
func (p *Parameters) ThreeDSecureDetails() *threeds.ThreeDSecure {
	tds, _ := p.Get(KeyThreeDSecure).(*threeds.ThreeDSecure)
	return tds
}
