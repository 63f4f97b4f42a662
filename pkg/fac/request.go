package fac

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sirosfoundation/go-fac/pkg/message"
	"github.com/sirosfoundation/go-fac/pkg/params"
	"github.com/sirosfoundation/go-fac/pkg/signature"
)

// Request is a single gateway call. It is not safe for concurrent use.
type Request struct {
	client   *Client
	op       message.Operation
	params   *params.Parameters
	doc      *etree.Document
	prepared bool
}

// Operation returns the request's operation
func (r *Request) Operation() message.Operation { return r.op }

// Parameters returns the parameter store backing the request
func (r *Request) Parameters() *params.Parameters { return r.params }

// Document returns the encoded request document, or nil before Send
func (r *Request) Document() *etree.Document { return r.doc }

// TransactionID returns the stored transaction id without resolving it
func (r *Request) TransactionID() string { return r.params.TransactionID() }

// Prepare resolves the transaction id and computes the signature. Send calls
// it when needed; call it first to read the id and signature while building
// fields. Repeated calls have no further effect.
func (r *Request) Prepare() error {
	if r.prepared {
		return nil
	}
	r.params.ResolveTransactionID()
	if _, err := signature.Sign(r.op, r.params); err != nil {
		return err
	}
	r.prepared = true
	return nil
}

// Send encodes fields, posts the document and returns the typed response
// for the operation. A non-200 status yields a *TransportError.
func (r *Request) Send(ctx context.Context, fields message.Field) (Result, error) {
	c := r.client
	sendID := uuid.New().String()

	ctx, span := c.tracer.Start(ctx, "fac."+r.op.String(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("fac.operation", r.op.String()),
			attribute.String("fac.send_id", sendID),
		),
	)
	defer span.End()

	result, err := r.send(ctx, sendID, span, fields)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (r *Request) send(ctx context.Context, sendID string, span trace.Span, fields message.Field) (Result, error) {
	c := r.client

	// 1. Resolve transaction id and signature
	if err := r.Prepare(); err != nil {
		return nil, fmt.Errorf("preparing %s: %w", r.op, err)
	}
	txID := r.params.TransactionID()
	span.SetAttributes(attribute.String("fac.transaction_id", txID))

	// 2. Encode
	doc, err := message.Encode(r.op, fields)
	if err != nil {
		return nil, err
	}
	r.doc = doc

	body, err := message.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing %s: %w", r.op, err)
	}

	// 3. POST
	endpoint := c.Endpoint(r.params.TestMode()) + r.op.String()
	c.logger.Debug("Sending request",
		"operation", r.op.String(),
		"endpoint", endpoint,
		"transaction_id", txID,
		"send_id", sendID,
	)

	resp, err := c.transport.Post(ctx, endpoint, body, ContentType)
	if err != nil {
		return nil, fmt.Errorf("sending %s: %w", r.op, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	// 4. Cache the document as transmitted
	if r.params.CacheRequest() {
		c.cache.SaveRequest(ctx, r.op, txID, body)
	}

	// 5. Anything but 200 is a transport failure
	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Gateway rejected request",
			"operation", r.op.String(),
			"status", resp.StatusCode,
			"send_id", sendID,
		)
		return nil, &TransportError{StatusCode: resp.StatusCode, Reason: resp.Reason}
	}

	respDoc := etree.NewDocument()
	if err := respDoc.ReadFromBytes(resp.Body); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", r.op, err)
	}
	if err := checkSingleRoot(respDoc); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", r.op, err)
	}

	if r.params.CacheTransaction() {
		c.cache.SaveResponse(ctx, r.op, txID, bytes.TrimSpace(resp.Body))
	}

	c.logger.Debug("Received response",
		"operation", r.op.String(),
		"root", respDoc.Root().Tag,
		"transaction_id", txID,
		"send_id", sendID,
	)

	// 6. Dispatch
	return NewResponse(r, respDoc), nil
}

// checkSingleRoot rejects documents without exactly one root element or with
// text outside it
func checkSingleRoot(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return ErrTrailingContent
			}
		}
	}
	switch {
	case roots == 0:
		return ErrEmptyResponse
	case roots > 1:
		return ErrTrailingContent
	}
	return nil
}
