package message

import (
	"errors"
	"fmt"
)

// Operation is one named gateway action
type Operation int

const (
	Authorize Operation = iota
	TransactionStatus
	TransactionModification
	Tokenize
	Authorize3DS
	HostedPagePreprocess
	HostedPageResults

	operationCount
)

// ErrUnknownOperation is returned when parsing an undeclared operation name
var ErrUnknownOperation = errors.New("unknown operation")

// NumOperations is the number of declared operations
const NumOperations = int(operationCount)

type operationSpec struct {
	name         string
	requestRoot  string
	responseRoot string
	signed       bool
}

var operations = [...]operationSpec{
	Authorize: {
		name:         "Authorize",
		requestRoot:  "AuthorizeRequest",
		responseRoot: "AuthorizeResponse",
		signed:       true,
	},
	TransactionStatus: {
		name:         "TransactionStatus",
		requestRoot:  "TransactionStatusRequest",
		responseRoot: "TransactionStatusResponse",
	},
	TransactionModification: {
		name:         "TransactionModification",
		requestRoot:  "TransactionModificationRequest",
		responseRoot: "TransactionModificationResponse",
	},
	Tokenize: {
		name:         "Tokenize",
		requestRoot:  "TokenizeRequest",
		responseRoot: "TokenizeResponse",
	},
	Authorize3DS: {
		name:         "Authorize3DS",
		requestRoot:  "Authorize3DSRequest",
		responseRoot: "Authorize3DSResponse",
		signed:       true,
	},
	HostedPagePreprocess: {
		name:         "HostedPagePreprocess",
		requestRoot:  "HostedPagePreprocessRequest",
		responseRoot: "HostedPagePreprocessResponse",
		signed:       true,
	},
	HostedPageResults: {
		name:         "HostedPageResults",
		requestRoot:  "string",
		responseRoot: "HostedPageResultsResponse",
	},
}

// The table must cover every operation; this fails to compile otherwise.
var _ = [1]struct{}{}[len(operations)-NumOperations]

// Operations returns every declared operation in declaration order
func Operations() []Operation {
	ops := make([]Operation, 0, NumOperations)
	for op := Operation(0); op < operationCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseOperation returns the operation with the given name
func ParseOperation(name string) (Operation, error) {
	for op := Operation(0); op < operationCount; op++ {
		if operations[op].name == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOperation, name)
}

// Valid reports whether o is a declared operation
func (o Operation) Valid() bool {
	return o >= 0 && o < operationCount
}

func (o Operation) spec() operationSpec {
	if !o.Valid() {
		panic(fmt.Sprintf("message: undeclared operation %d", int(o)))
	}
	return operations[o]
}

// String returns the operation name, which is also the endpoint path segment
func (o Operation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Operation(%d)", int(o))
	}
	return operations[o].name
}

// RequestRoot returns the root element name of the request document
func (o Operation) RequestRoot() string { return o.spec().requestRoot }

// ResponseRoot returns the root element name of the response document
func (o Operation) ResponseRoot() string { return o.spec().responseRoot }

// RequiresSignature reports whether requests for o carry a signature
func (o Operation) RequiresSignature() bool { return o.spec().signed }
