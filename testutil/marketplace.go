package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/sapsanDev/skinvedapi/signing"
	"github.com/sapsanDev/skinvedapi/skinvend"
)

// ReceivedRequest is one exchange as the fake marketplace saw it, with the
// authentication headers already parsed and checked.
type ReceivedRequest struct {
	Method      string
	Path        string
	Header      http.Header
	Query       url.Values
	Body        []byte
	Params      map[string]any
	Timestamp   int64
	Signature   string
	SignatureOK bool
}

// MarketplaceServer is a fake SkinVend upstream for client tests. It
// records every request, reconstructs the signed parameter set from the
// query or body, and verifies the timestamp/signature headers against the
// shared secret. Responses come from the configured handler; the default
// answers 200 with an empty JSON object.
type MarketplaceServer struct {
	*httptest.Server

	secret  string
	handler http.HandlerFunc

	mu       sync.Mutex
	requests []ReceivedRequest
}

func NewMarketplaceServer(t *testing.T, secret string) *MarketplaceServer {
	t.Helper()

	srv := &MarketplaceServer{
		secret: secret,
		handler: func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{}"))
		},
	}

	srv.Server = httptest.NewServer(http.HandlerFunc(srv.serve))
	t.Cleanup(srv.Close)

	return srv
}

// Handle replaces the response handler. The recorder still runs first, so
// requests stay captured regardless of what the handler does.
func (s *MarketplaceServer) Handle(handler http.HandlerFunc) {
	s.handler = handler
}

// RespondWith makes every subsequent request answer with the given status
// and raw body.
func (s *MarketplaceServer) RespondWith(status int, body string) {
	s.Handle(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (s *MarketplaceServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	params := signedParams(r, body)
	timestamp, _ := strconv.ParseInt(r.Header.Get(skinvend.HeaderTimestamp), 10, 64)
	sig := r.Header.Get(skinvend.HeaderSignature)

	s.mu.Lock()
	s.requests = append(s.requests, ReceivedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Header:      r.Header.Clone(),
		Query:       r.URL.Query(),
		Body:        body,
		Params:      params,
		Timestamp:   timestamp,
		Signature:   sig,
		SignatureOK: signing.Verify(s.secret, params, timestamp, sig),
	})
	s.mu.Unlock()

	s.handler(w, r)
}

// signedParams rebuilds the flat parameter set that the client signed.
// Bracket-notation array keys never enter the signature; JSON is decoded
// with UseNumber so numeric text survives verbatim.
func signedParams(r *http.Request, body []byte) map[string]any {
	params := map[string]any{}

	if r.Method == http.MethodGet {
		for key, values := range r.URL.Query() {
			if strings.HasSuffix(key, "[]") || len(values) == 0 {
				continue
			}

			params[key] = values[0]
		}

		return params
	}

	if len(body) == 0 {
		return params
	}

	decoder := json.NewDecoder(strings.NewReader(string(body)))
	decoder.UseNumber()
	_ = decoder.Decode(&params)

	return params
}

func (s *MarketplaceServer) Requests() []ReceivedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ReceivedRequest(nil), s.requests...)
}

func (s *MarketplaceServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// LastRequest fails the test if nothing was received.
func (s *MarketplaceServer) LastRequest(t *testing.T) ReceivedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		t.Fatal("no requests received by the fake marketplace")
	}

	return s.requests[len(s.requests)-1]
}
