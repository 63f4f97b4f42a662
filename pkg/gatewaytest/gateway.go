// Package gatewaytest provides an in-process fake of the gateway's XML
// service for tests and examples.
package gatewaytest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/go-chi/chi/v5"

	"github.com/sirosfoundation/go-fac/pkg/message"
)

// BasePath is the path prefix the fake serves operations under
const BasePath = "/PGServiceXML"

// Reply is a canned answer for one operation
type Reply struct {
	Status int
	Body   string
}

// Received is a request recorded by the fake
type Received struct {
	Operation   string
	ContentType string
	Body        []byte
}

// Gateway answers POST {BasePath}/{operation} with canned replies. Operations
// without a configured reply get an approved response built from the
// request.
type Gateway struct {
	router chi.Router

	mu       sync.Mutex
	replies  map[string]Reply
	received []Received
}

// New creates a fake gateway handler
func New() *Gateway {
	g := &Gateway{replies: make(map[string]Reply)}

	r := chi.NewRouter()
	r.Route(BasePath, func(r chi.Router) {
		r.Post("/{operation}", g.handle)
	})
	g.router = r
	return g
}

// ServeHTTP implements http.Handler
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

// SetReply makes op answer with status and body
func (g *Gateway) SetReply(op message.Operation, status int, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replies[op.String()] = Reply{Status: status, Body: body}
}

// Received returns the recorded requests in arrival order
func (g *Gateway) Received() []Received {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Received(nil), g.received...)
}

// Last returns the most recent request, or false when none was received
func (g *Gateway) Last() (Received, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.received) == 0 {
		return Received{}, false
	}
	return g.received[len(g.received)-1], true
}

func (g *Gateway) handle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "operation")
	op, err := message.ParseOperation(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g.mu.Lock()
	g.received = append(g.received, Received{
		Operation:   name,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	reply, ok := g.replies[name]
	g.mu.Unlock()

	if !ok {
		reply, err = defaultReply(op, body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(reply.Status)
	io.WriteString(w, reply.Body)
}

// Server is a Gateway listening on a local HTTP port
type Server struct {
	*Gateway
	srv *httptest.Server
}

// NewServer starts a fake gateway
func NewServer() *Server {
	g := New()
	return &Server{Gateway: g, srv: httptest.NewServer(g)}
}

// Endpoint returns the base URL to configure as the client endpoint
func (s *Server) Endpoint() string {
	return s.srv.URL + BasePath + "/"
}

// Close shuts the server down
func (s *Server) Close() {
	s.srv.Close()
}

// requestValue returns the text of the first element named tag anywhere in
// the request document
func requestValue(doc *etree.Document, tag string) string {
	if doc == nil || doc.Root() == nil {
		return ""
	}
	if el := doc.Root().FindElement("//" + tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}
