package providers

import (
	"net/http"
	"studynexus/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	GetRoutes() []structures.Route
}

// RouterProvider collects handlers per URL so one path can serve both GET
// and POST.
type RouterProvider struct {
	urls     []string
	handlers map[string]map[string]http.Handler
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	methods, ok := rp.handlers[url]
	if !ok {
		methods = make(map[string]http.Handler, 2)
		rp.handlers[url] = methods
		rp.urls = append(rp.urls, url)
	}
	methods[method] = handler
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	routes := make([]structures.Route, 0, len(rp.urls))
	for _, url := range rp.urls {
		routes = append(routes, structures.Route{
			Url:     url,
			Handler: methodHandler(rp.handlers[url]),
		})
	}
	return routes
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{handlers: make(map[string]map[string]http.Handler)}
}

func methodHandler(methods map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := methods[r.Method]
		if !ok {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
