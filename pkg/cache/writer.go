package cache

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sirosfoundation/go-fac/pkg/message"
)

var nameReplacer = strings.NewReplacer("/", "_", "\\", "_")

// RequestName returns the artifact name for a request document
func RequestName(op message.Operation, transactionID string) string {
	return op.String() + "Request_" + nameReplacer.Replace(transactionID) + ".xml"
}

// ResponseName returns the artifact name for a response document
func ResponseName(op message.Operation, transactionID string) string {
	return op.String() + "Response_" + nameReplacer.Replace(transactionID) + ".xml"
}

// Writer saves request and response documents to a Store. A nil *Writer
// is valid and saves nothing.
type Writer struct {
	store  Store
	logger *slog.Logger
}

// NewWriter creates a writer backed by store
func NewWriter(store Store, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{store: store, logger: logger}
}

// SaveRequest stores a serialized request document. It reports whether the
// artifact was written.
func (w *Writer) SaveRequest(ctx context.Context, op message.Operation, transactionID string, data []byte) bool {
	return w.save(ctx, RequestName(op, transactionID), data)
}

// SaveResponse stores a serialized response document. It reports whether
// the artifact was written.
func (w *Writer) SaveResponse(ctx context.Context, op message.Operation, transactionID string, data []byte) bool {
	return w.save(ctx, ResponseName(op, transactionID), data)
}

func (w *Writer) save(ctx context.Context, name string, data []byte) bool {
	if w == nil || w.store == nil {
		return false
	}
	if err := w.store.Save(ctx, name, data); err != nil {
		w.logger.Warn("Caching skipped", "artifact", name, "error", err)
		return false
	}
	w.logger.Debug("Cached artifact", "artifact", name, "bytes", len(data))
	return true
}
