package fac

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/params"
)

func parseDoc(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	return doc
}

func responseFor(t *testing.T, op message.Operation, body string) Result {
	t.Helper()
	req := (&Client{}).NewRequest(op, params.New().SetTransactionID("T-1"))
	return NewResponse(req, parseDoc(t, body))
}

func TestNewResponse_TypePerOperation(t *testing.T) {
	expected := map[message.Operation]Result{
		message.Authorize:               &AuthorizeResponse{},
		message.TransactionStatus:       &TransactionStatusResponse{},
		message.TransactionModification: &TransactionModificationResponse{},
		message.Tokenize:                &TokenizeResponse{},
		message.Authorize3DS:            &Authorize3DSResponse{},
		message.HostedPagePreprocess:    &HostedPagePreprocessResponse{},
		message.HostedPageResults:       &HostedPageResultsResponse{},
	}
	require.Len(t, expected, message.NumOperations)

	for _, op := range message.Operations() {
		t.Run(op.String(), func(t *testing.T) {
			r := responseFor(t, op, "<"+op.ResponseRoot()+"/>")
			assert.IsType(t, expected[op], r)
			assert.Equal(t, op, r.Operation())
			assert.Equal(t, "T-1", r.TransactionID())
			assert.Equal(t, op.ResponseRoot(), r.Document().Root().Tag)
		})
	}
}

func TestNewResponse_UndeclaredOperationPanics(t *testing.T) {
	req := (&Client{}).NewRequest(message.Operation(99), nil)
	assert.Panics(t, func() {
		NewResponse(req, etree.NewDocument())
	})
}

func TestResponse_NamespacedQueries(t *testing.T) {
	r := responseFor(t, message.Authorize, `<AuthorizeResponse xmlns="`+message.NsPlatform+`">
  <CreditCardTransactionResults>
    <ResponseCode> 2 </ResponseCode>
  </CreditCardTransactionResults>
  <Other xmlns="urn:other"><ResponseCode>9</ResponseCode></Other>
</AuthorizeResponse>`).(*AuthorizeResponse)

	assert.Equal(t, "2", r.Value("fac:CreditCardTransactionResults/fac:ResponseCode"))
	assert.Equal(t, "2", r.Value("CreditCardTransactionResults/ResponseCode"))
	assert.Len(t, r.FindAll("//ResponseCode"), 2)
	assert.Len(t, r.FindAll("//fac:ResponseCode"), 1)
	assert.Equal(t, "", r.Value("fac:Missing"))
	assert.Nil(t, r.Find("fac:Missing"))
	assert.False(t, r.IsSuccessful())
	assert.Equal(t, ResponseCodeDeclined, r.Results().ResponseCode)
}

func TestResponse_PrefixCheckedAtEveryStep(t *testing.T) {
	r := responseFor(t, message.Authorize, `<AuthorizeResponse xmlns="`+message.NsPlatform+`">
  <CreditCardTransactionResults xmlns="urn:other">
    <ResponseCode xmlns="`+message.NsPlatform+`">9</ResponseCode>
  </CreditCardTransactionResults>
  <Wrapper>
    <CreditCardTransactionResults><ResponseCode>1</ResponseCode></CreditCardTransactionResults>
  </Wrapper>
</AuthorizeResponse>`).(*AuthorizeResponse)

	tests := []struct {
		path string
		want []string
	}{
		{"fac:CreditCardTransactionResults/fac:ResponseCode", nil},
		{"CreditCardTransactionResults/fac:ResponseCode", []string{"9"}},
		{"fac:CreditCardTransactionResults/ResponseCode", nil},
		{"//fac:CreditCardTransactionResults/fac:ResponseCode", []string{"1"}},
		{"fac:Wrapper/fac:CreditCardTransactionResults[fac:ResponseCode]/fac:ResponseCode", []string{"1"}},
		{"//fac:ResponseCode", []string{"9", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got []string
			for _, el := range r.FindAll(tt.path) {
				got = append(got, el.Text())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponse_UnqualifiedElementsDoNotMatchPrefix(t *testing.T) {
	r := responseFor(t, message.Tokenize, `<TokenizeResponse><Success>true</Success></TokenizeResponse>`).(*TokenizeResponse)

	assert.False(t, r.IsSuccessful())
	assert.Equal(t, "true", r.Value("Success"))
}

func TestTypedResponses(t *testing.T) {
	ns := ` xmlns="` + message.NsPlatform + `"`

	t.Run("TransactionStatus", func(t *testing.T) {
		r := responseFor(t, message.TransactionStatus, `<TransactionStatusResponse`+ns+`><CreditCardTransactionResults><ResponseCode>1</ResponseCode><ReferenceNumber>R1</ReferenceNumber></CreditCardTransactionResults></TransactionStatusResponse>`).(*TransactionStatusResponse)
		assert.True(t, r.IsSuccessful())
		assert.Equal(t, "R1", r.Results().ReferenceNumber)
	})

	t.Run("TransactionModification", func(t *testing.T) {
		r := responseFor(t, message.TransactionModification, `<TransactionModificationResponse`+ns+`><ReasonCode>1101</ReasonCode><ReasonCodeDescription>ok</ReasonCodeDescription><ResponseCode>1</ResponseCode></TransactionModificationResponse>`).(*TransactionModificationResponse)
		assert.True(t, r.IsSuccessful())
		assert.Equal(t, "1101", r.ReasonCode())
		assert.Equal(t, "ok", r.ReasonCodeDescription())
	})

	t.Run("Tokenize", func(t *testing.T) {
		r := responseFor(t, message.Tokenize, `<TokenizeResponse`+ns+`><CustomerReference>C1</CustomerReference><ErrorMsg/><Success>true</Success><Token>411111_000011111</Token></TokenizeResponse>`).(*TokenizeResponse)
		assert.True(t, r.IsSuccessful())
		assert.Equal(t, "411111_000011111", r.Token())
		assert.Equal(t, "C1", r.CustomerReference())
		assert.Empty(t, r.ErrorMessage())
	})

	t.Run("Authorize3DS", func(t *testing.T) {
		r := responseFor(t, message.Authorize3DS, `<Authorize3DSResponse`+ns+`><HTMLFormData>&lt;form&gt;&lt;/form&gt;</HTMLFormData><ResponseCode>0</ResponseCode><ResponseCodeDescription>Success</ResponseCodeDescription></Authorize3DSResponse>`).(*Authorize3DSResponse)
		assert.True(t, r.IsSuccessful())
		assert.Equal(t, "<form></form>", r.HTMLFormData())
		assert.Equal(t, "Success", r.ResponseCodeDescription())
	})

	t.Run("HostedPagePreprocess", func(t *testing.T) {
		r := responseFor(t, message.HostedPagePreprocess, `<HostedPagePreprocessResponse`+ns+`><ResponseCode>0</ResponseCode><SingleUseToken>tok</SingleUseToken></HostedPagePreprocessResponse>`).(*HostedPagePreprocessResponse)
		assert.True(t, r.IsSuccessful())
		assert.Equal(t, "tok", r.SecurityToken())
		assert.Equal(t, "0", r.ResponseCode())
	})

	t.Run("HostedPageResults without 3DS", func(t *testing.T) {
		r := responseFor(t, message.HostedPageResults, `<HostedPageResultsResponse`+ns+`><AuthResponse><CreditCardTransactionResults><ResponseCode>3</ResponseCode></CreditCardTransactionResults></AuthResponse></HostedPageResultsResponse>`).(*HostedPageResultsResponse)
		assert.False(t, r.IsSuccessful())
		assert.Equal(t, ResponseCodeError, r.Results().ResponseCode)
		assert.Nil(t, r.ThreeDSecure())
	})
}
