package fac

import (
	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/params"
	"github.com/sirosfoundation/go-fac/pkg/signature"
	"github.com/sirosfoundation/go-fac/pkg/threeds"
)

// CurrencyExponent is the number of minor-unit digits the gateway assumes
const CurrencyExponent = "2"

// TransactionDetails builds the TransactionDetails group from prepared
// parameters. Optional members are left out when unset.
func TransactionDetails(p *params.Parameters) (message.Object, error) {
	var amount string
	if v, ok := p.AmountInteger(); ok {
		wire, err := signature.AmountForWire(v)
		if err != nil {
			return nil, err
		}
		amount = wire
	}

	obj := message.Obj(
		message.S("AcquirerId", p.AcquirerID()),
		message.S("Amount", amount),
		message.S("Currency", p.CurrencyNumeric()),
		message.S("CurrencyExponent", CurrencyExponent),
	)
	if tax := p.CustomDataTax(); tax != "" {
		obj = obj.Set("CustomData", message.Scalar(tax))
	}
	if ref := p.CustomerReference(); ref != "" {
		obj = obj.Set("CustomerReference", message.Scalar(ref))
	}
	if ip := p.ClientIP(); ip != "" {
		obj = obj.Set("IPAddress", message.Scalar(ip))
	}
	obj = obj.Set("MerchantId", message.Scalar(p.FacID()))
	obj = obj.Set("OrderNumber", message.Scalar(p.TransactionID()))
	if sig := p.Signature(); sig != "" {
		obj = obj.Set("Signature", message.Scalar(sig))
		obj = obj.Set("SignatureMethod", message.Scalar(p.SignatureMethod()))
	}
	obj = obj.Set("TransactionCode", message.Scalar(p.TransactionCode().WireValue()))
	return obj, nil
}

// ThreeDSecureGroup returns the stored 3-D Secure details as a named
// ThreeDSecure entry. ok is false when no details are set.
func ThreeDSecureGroup(p *params.Parameters) (entry message.Entry, ok bool) {
	tds := p.ThreeDSecureDetails()
	if tds == nil {
		return message.Entry{}, false
	}
	return message.E(threeds.ElementName, tds.Fields()), true
}
