package fac

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/threeds"
)

// NamespacePrefix may be used in query paths to require an element in the
// platform namespace, e.g. "fac:CreditCardTransactionResults/fac:ResponseCode"
const NamespacePrefix = "fac"

// Response codes reported in CreditCardTransactionResults
const (
	ResponseCodeApproved = "1"
	ResponseCodeDeclined = "2"
	ResponseCodeError    = "3"
)

// Response is the parsed gateway reply shared by all typed responses
type Response struct {
	request *Request
	doc     *etree.Document
}

// Operation returns the operation the response answers
func (r *Response) Operation() message.Operation { return r.request.Operation() }

// Request returns the originating request
func (r *Response) Request() *Request { return r.request }

// Document returns the parsed response document
func (r *Response) Document() *etree.Document { return r.doc }

// TransactionID returns the transaction id of the originating request
func (r *Response) TransactionID() string { return r.request.TransactionID() }

// FindAll returns the elements matching path, relative to the document
// root. Steps written as "fac:Name" only match elements in the platform
// namespace. The check covers the trailing run of name steps, back to the
// nearest "//", "." or ".." step; prefixes inside [...] filters only select
// by local name. An invalid path matches nothing.
func (r *Response) FindAll(path string) []*etree.Element {
	root := r.doc.Root()
	if root == nil {
		return nil
	}

	prefix := NamespacePrefix + ":"
	compiled, err := etree.CompilePath(strings.ReplaceAll(path, prefix, ""))
	if err != nil {
		return nil
	}

	found := root.FindElementsPath(compiled)
	if !strings.Contains(path, prefix) {
		return found
	}
	steps := qualifiedSteps(path, prefix)
	matched := found[:0]
	for _, el := range found {
		if inPlatformNamespace(el, steps) {
			matched = append(matched, el)
		}
	}
	return matched
}

// qualifiedSteps reports, last step first, whether each trailing name step
// of path carries the namespace prefix
func qualifiedSteps(path, prefix string) []bool {
	segs := splitSteps(path)
	var steps []bool
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if seg == "" || seg == "." || seg == ".." {
			break
		}
		steps = append(steps, strings.HasPrefix(seg, prefix))
	}
	return steps
}

// splitSteps splits path on "/" outside of [...] filters
func splitSteps(path string) []string {
	var segs []string
	depth, start := 0, 0
	for i, c := range path {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		case '/':
			if depth == 0 {
				segs = append(segs, path[start:i])
				start = i + 1
			}
		}
	}
	return append(segs, path[start:])
}

// inPlatformNamespace walks from el towards the root, checking one ancestor
// per step
func inPlatformNamespace(el *etree.Element, steps []bool) bool {
	for _, qualified := range steps {
		if el == nil {
			return false
		}
		if qualified && el.NamespaceURI() != message.NsPlatform {
			return false
		}
		el = el.Parent()
	}
	return true
}

// Find returns the first element matching path, or nil
func (r *Response) Find(path string) *etree.Element {
	if found := r.FindAll(path); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Value returns the trimmed text of the first element matching path, or ""
func (r *Response) Value(path string) string {
	if el := r.Find(path); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// CardResults is the CreditCardTransactionResults group
type CardResults struct {
	AuthCode              string
	AVSResult             string
	CVV2Result            string
	OriginalResponseCode  string
	PaddedCardNumber      string
	ReasonCode            string
	ReasonCodeDescription string
	ReferenceNumber       string
	ResponseCode          string
	TokenizedPAN          string
}

// Approved reports whether the card transaction was approved
func (c CardResults) Approved() bool {
	return c.ResponseCode == ResponseCodeApproved
}

func (r *Response) cardResults(base string) CardResults {
	v := func(name string) string { return r.Value(base + "fac:CreditCardTransactionResults/fac:" + name) }
	return CardResults{
		AuthCode:              v("AuthCode"),
		AVSResult:             v("AVSResult"),
		CVV2Result:            v("CVV2Result"),
		OriginalResponseCode:  v("OriginalResponseCode"),
		PaddedCardNumber:      v("PaddedCardNumber"),
		ReasonCode:            v("ReasonCode"),
		ReasonCodeDescription: v("ReasonCodeDescription"),
		ReferenceNumber:       v("ReferenceNumber"),
		ResponseCode:          v("ResponseCode"),
		TokenizedPAN:          v("TokenizedPAN"),
	}
}

// AuthorizeResponse answers message.Authorize
type AuthorizeResponse struct {
	*Response
}

// Results returns the card transaction results
func (r *AuthorizeResponse) Results() CardResults { return r.cardResults("") }

// IsSuccessful reports whether the authorization was approved
func (r *AuthorizeResponse) IsSuccessful() bool { return r.Results().Approved() }

// OrderNumber returns the order number echoed by the gateway
func (r *AuthorizeResponse) OrderNumber() string { return r.Value("fac:OrderNumber") }

// Signature returns the gateway's response signature
func (r *AuthorizeResponse) Signature() string { return r.Value("fac:Signature") }

// TransactionStatusResponse answers message.TransactionStatus
type TransactionStatusResponse struct {
	*Response
}

// Results returns the card transaction results
func (r *TransactionStatusResponse) Results() CardResults { return r.cardResults("") }

// IsSuccessful reports whether the queried transaction was approved
func (r *TransactionStatusResponse) IsSuccessful() bool { return r.Results().Approved() }

// TransactionModificationResponse answers message.TransactionModification
type TransactionModificationResponse struct {
	*Response
}

func (r *TransactionModificationResponse) ResponseCode() string { return r.Value("fac:ResponseCode") }
func (r *TransactionModificationResponse) ReasonCode() string   { return r.Value("fac:ReasonCode") }

func (r *TransactionModificationResponse) ReasonCodeDescription() string {
	return r.Value("fac:ReasonCodeDescription")
}

// IsSuccessful reports whether the modification was accepted
func (r *TransactionModificationResponse) IsSuccessful() bool {
	return r.ResponseCode() == ResponseCodeApproved
}

// TokenizeResponse answers message.Tokenize
type TokenizeResponse struct {
	*Response
}

func (r *TokenizeResponse) Token() string             { return r.Value("fac:Token") }
func (r *TokenizeResponse) ErrorMessage() string      { return r.Value("fac:ErrorMsg") }
func (r *TokenizeResponse) CustomerReference() string { return r.Value("fac:CustomerReference") }

// IsSuccessful reports whether a token was issued
func (r *TokenizeResponse) IsSuccessful() bool {
	return strings.EqualFold(r.Value("fac:Success"), "true")
}

// Authorize3DSResponse answers message.Authorize3DS
type Authorize3DSResponse struct {
	*Response
}

// HTMLFormData returns the form that redirects the cardholder to the issuer
func (r *Authorize3DSResponse) HTMLFormData() string { return r.Value("fac:HTMLFormData") }

func (r *Authorize3DSResponse) ResponseCode() string { return r.Value("fac:ResponseCode") }

func (r *Authorize3DSResponse) ResponseCodeDescription() string {
	return r.Value("fac:ResponseCodeDescription")
}

// IsSuccessful reports whether the 3-D Secure form was issued
func (r *Authorize3DSResponse) IsSuccessful() bool { return r.ResponseCode() == "0" }

// HostedPagePreprocessResponse answers message.HostedPagePreprocess
type HostedPagePreprocessResponse struct {
	*Response
}

// SecurityToken returns the single-use token for the hosted payment page
func (r *HostedPagePreprocessResponse) SecurityToken() string {
	return r.Value("fac:SingleUseToken")
}

func (r *HostedPagePreprocessResponse) ResponseCode() string { return r.Value("fac:ResponseCode") }

func (r *HostedPagePreprocessResponse) ResponseCodeDescription() string {
	return r.Value("fac:ResponseCodeDescription")
}

// IsSuccessful reports whether a token was issued
func (r *HostedPagePreprocessResponse) IsSuccessful() bool {
	return r.ResponseCode() == "0" && r.SecurityToken() != ""
}

// ThreeDSResult uses shorter names for some fields
var threeDSAliases = map[string]string{
	"Eci": threeds.FieldECIIndicator,
}

// HostedPageResultsResponse answers message.HostedPageResults
type HostedPageResultsResponse struct {
	*Response
}

// Results returns the card transaction results of the hosted page payment
func (r *HostedPageResultsResponse) Results() CardResults {
	return r.cardResults("fac:AuthResponse/")
}

// IsSuccessful reports whether the hosted page payment was approved
func (r *HostedPageResultsResponse) IsSuccessful() bool { return r.Results().Approved() }

// ThreeDSecure returns the 3-D Secure outcome, or nil when the response
// carries none
func (r *HostedPageResultsResponse) ThreeDSecure() *threeds.ThreeDSecure {
	group := r.Find("fac:ThreeDSResult")
	if group == nil {
		return nil
	}
	details := make(map[string]any)
	for _, child := range group.ChildElements() {
		name := child.Tag
		if alias, ok := threeDSAliases[name]; ok {
			name = alias
		}
		details[name] = strings.TrimSpace(child.Text())
	}
	tds, err := threeds.New(details)
	if err != nil {
		return nil
	}
	return tds
}
