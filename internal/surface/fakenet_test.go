package surface_test

import (
	"context"
	"exposure/pkg/probe"
	"exposure/pkg/serrors"
	"net/http"
	"sync"
)

// fakeNet answers probes from a URL -> response table. Unknown URLs fail
// to connect.
type fakeNet struct {
	mu     sync.Mutex
	routes map[string]probe.Result
	calls  []string
}

func newFakeNet() *fakeNet {
	return &fakeNet{routes: map[string]probe.Result{}}
}

func (f *fakeNet) route(url string, status int, headers map[string]string) *fakeNet {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	contentType := h.Get("Content-Type")
	if contentType == "" {
		contentType = "unknown"
	}
	f.routes[url] = probe.Result{URL: url, StatusCode: status, Headers: h, ContentType: contentType}

	return f
}

func (f *fakeNet) Probe(_ context.Context, req probe.Request) (probe.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req.URL)
	if r, ok := f.routes[req.URL]; ok {
		return r, nil
	}

	return probe.Result{}, serrors.With(serrors.ErrNetworkUnreachable, "connection refused: %s", req.URL)
}

func (f *fakeNet) probed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string{}, f.calls...)
}
