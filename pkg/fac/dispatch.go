package fac

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-fac/pkg/message"
)

// Result is the typed response to a request. The concrete type depends on
// the operation, e.g. *AuthorizeResponse for message.Authorize.
type Result interface {
	Operation() message.Operation
	Request() *Request
	Document() *etree.Document
	TransactionID() string
}

type responseConstructor func(base *Response) Result

var responseConstructors = [...]responseConstructor{
	message.Authorize:               func(b *Response) Result { return &AuthorizeResponse{Response: b} },
	message.TransactionStatus:       func(b *Response) Result { return &TransactionStatusResponse{Response: b} },
	message.TransactionModification: func(b *Response) Result { return &TransactionModificationResponse{Response: b} },
	message.Tokenize:                func(b *Response) Result { return &TokenizeResponse{Response: b} },
	message.Authorize3DS:            func(b *Response) Result { return &Authorize3DSResponse{Response: b} },
	message.HostedPagePreprocess:    func(b *Response) Result { return &HostedPagePreprocessResponse{Response: b} },
	message.HostedPageResults:       func(b *Response) Result { return &HostedPageResultsResponse{Response: b} },
}

// Every operation needs a constructor; this fails to compile otherwise.
var _ = [1]struct{}{}[len(responseConstructors)-message.NumOperations]

// NewResponse wraps doc in the response type declared for the request's
// operation. It panics for an undeclared operation.
func NewResponse(req *Request, doc *etree.Document) Result {
	op := req.Operation()
	if !op.Valid() {
		panic(fmt.Sprintf("fac: no response type for %s", op))
	}
	return responseConstructors[op](&Response{request: req, doc: doc})
}
