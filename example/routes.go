package example

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/km-arc/go-injector/framework/container"
	gohttp "github.com/km-arc/go-injector/framework/http"
	"github.com/km-arc/go-injector/framework/metrics"
	"github.com/km-arc/go-injector/framework/routing"
	"github.com/km-arc/go-injector/framework/validation"
)

// BindingView is one entry of GET /bindings.
type BindingView struct {
	Key  string `json:"key"`
	Mode string `json:"mode"`
}

// ResolvedView is the body of GET /resolve.
type ResolvedView struct {
	Key  string `json:"key"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// Routes registers the example endpoints:
//
//	GET /               → {"data": foo.Lala()}
//	GET /bindings       → registered keys and their modes
//	GET /resolve?key=k  → resolves k; 404 unknown key, 409 cycle
//
// collector may be nil.
func Routes(r *routing.Router, c *container.Container, collector *metrics.Collector) {
	h := &handlers{c: c, metrics: collector}
	r.Get("/", h.lala)
	r.Get("/bindings", h.bindings)
	r.Get("/resolve", h.resolve)
}

type handlers struct {
	c       *container.Container
	metrics *metrics.Collector
}

func (h *handlers) lala(w http.ResponseWriter, _ *http.Request) {
	foo, err := container.Resolve[*Foo](h.c, FooKey)
	if err != nil {
		h.fail(gohttp.NewResponse(w), err)
		return
	}
	gohttp.NewResponse(w).Success(foo.Lala())
}

func (h *handlers) bindings(w http.ResponseWriter, _ *http.Request) {
	keys := h.c.Keys()
	out := make([]BindingView, 0, len(keys))
	for _, k := range keys {
		mode, ok := h.c.Mode(k)
		if !ok {
			continue // replaced concurrently
		}
		out = append(out, BindingView{Key: k, Mode: mode.String()})
	}
	gohttp.NewResponse(w).Success(out)
}

func (h *handlers) resolve(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	key := r.URL.Query().Get("key")

	v := validation.Make(map[string]string{"key": key}, validation.Rules{"key": "required"})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	instance, err := h.c.Get(key)
	if err != nil {
		h.fail(res, err)
		return
	}

	mode, _ := h.c.Mode(key)
	view := ResolvedView{Key: key, Mode: mode.String(), Type: fmt.Sprintf("%T", instance)}
	if id, ok := instance.(Identified); ok {
		view.ID = id.InstanceID().String()
	}
	res.Success(view)
}

func (h *handlers) fail(res *gohttp.Response, err error) {
	if h.metrics != nil {
		h.metrics.ObserveError(err)
	}
	switch {
	case errors.Is(err, container.ErrUnknownKey):
		res.NotFound(err.Error())
	case errors.Is(err, container.ErrCyclicDependency):
		res.Conflict(err.Error())
	default:
		res.ServerError(err.Error())
	}
}
