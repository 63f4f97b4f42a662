package fac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/params"
	"github.com/sirosfoundation/go-fac/pkg/signature"
	"github.com/sirosfoundation/go-fac/pkg/threeds"
)

func entryNames(obj message.Object) []string {
	names := make([]string, 0, len(obj))
	for _, e := range obj {
		names = append(names, e.Name)
	}
	return names
}

func TestTransactionDetails_Minimal(t *testing.T) {
	p := authorizeParams()
	_, err := signature.Sign(message.TransactionStatus, p)
	require.NoError(t, err)

	obj, err := TransactionDetails(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AcquirerId", "Amount", "Currency", "CurrencyExponent",
		"MerchantId", "OrderNumber", "TransactionCode",
	}, entryNames(obj))

	v, _ := obj.Get("TransactionCode")
	assert.Equal(t, message.Scalar("0"), v)
}

func TestTransactionDetails_Full(t *testing.T) {
	p := authorizeParams().
		SetCustomDataTax("1.50").
		SetCustomerReference("CUST-9").
		SetClientIP("203.0.113.7").
		SetTransactionCode(params.TransactionCodeSinglePass.With(params.TransactionCode3DS))
	_, err := signature.Sign(message.Authorize, p)
	require.NoError(t, err)

	obj, err := TransactionDetails(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AcquirerId", "Amount", "Currency", "CurrencyExponent", "CustomData",
		"CustomerReference", "IPAddress", "MerchantId", "OrderNumber",
		"Signature", "SignatureMethod", "TransactionCode",
	}, entryNames(obj))

	get := func(name string) message.Field {
		v, _ := obj.Get(name)
		return v
	}
	assert.Equal(t, message.Scalar("000000001500"), get("Amount"))
	assert.Equal(t, message.Scalar("|TX1.50"), get("CustomData"))
	assert.Equal(t, message.Scalar("SHA1"), get("SignatureMethod"))
	assert.Equal(t, message.Scalar("72"), get("TransactionCode"))
}

func TestTransactionDetails_AmountTooLong(t *testing.T) {
	_, err := TransactionDetails(authorizeParams().SetAmountInteger(9999999999999))
	assert.ErrorIs(t, err, signature.ErrAmountTooLong)
}

func TestThreeDSecureGroup(t *testing.T) {
	_, ok := ThreeDSecureGroup(params.New())
	assert.False(t, ok)

	p, err := params.New().SetThreeDSecureDetails(map[string]any{
		threeds.FieldECIIndicator:         threeds.ECIVisaFull,
		threeds.FieldAuthenticationResult: threeds.AuthenticationSuccess,
	})
	require.NoError(t, err)

	entry, ok := ThreeDSecureGroup(p)
	require.True(t, ok)
	assert.Equal(t, "ThreeDSecure", entry.Name)

	group, ok := entry.Value.(message.Object)
	require.True(t, ok)
	assert.Equal(t, []string{threeds.FieldECIIndicator, threeds.FieldAuthenticationResult}, entryNames(group))

	// Encodes as a child group of the request root
	doc, err := message.EncodeRoot("Authorize3DSRequest", message.Obj(entry))
	require.NoError(t, err)
	assert.Equal(t, "05", doc.Root().FindElement("ThreeDSecure/ECIIndicator").Text())
}
