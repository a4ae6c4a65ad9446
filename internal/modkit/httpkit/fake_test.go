package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// fakeRouter records mounts so tests can assert on prefixes, paths, and middleware
type fakeRouter struct {
	mu       sync.Mutex
	prefix   string
	routes   map[string]Handler
	mws      int
	children []*fakeRouter
}

func newFakeRouter() *fakeRouter { return &fakeRouter{routes: map[string]Handler{}} }

func (f *fakeRouter) add(method, path string, h Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+f.prefix+path] = h
}

func (f *fakeRouter) Get(path string, h Handler)  { f.add(http.MethodGet, path, h) }
func (f *fakeRouter) Post(path string, h Handler) { f.add(http.MethodPost, path, h) }

func (f *fakeRouter) Handle(path string, h http.Handler) { f.add("ANY", path, h.ServeHTTP) }
func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.mu.Lock()
	f.mws += len(mw)
	f.mu.Unlock()
}

func (f *fakeRouter) Route(pattern string, fn func(Router)) {
	child := &fakeRouter{prefix: f.prefix + pattern, routes: f.routes}
	f.children = append(f.children, child)
	fn(child)
}

// serve runs the handler registered for "METHOD /path"
func (f *fakeRouter) serve(key string, body string) *httptest.ResponseRecorder {
	parts := strings.SplitN(key, " ", 2)
	rec := httptest.NewRecorder()
	h, ok := f.routes[key]
	if !ok {
		rec.WriteHeader(http.StatusNotFound)
		return rec
	}
	h(rec, httptest.NewRequest(parts[0], parts[1], strings.NewReader(body)))
	return rec
}
