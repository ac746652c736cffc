package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/metrics"
)

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	c := container.New()
	c.Register(container.Binding{Key: "a", Provider: func() string { return "a" }, Mode: container.CacheInstance})
	c.Register(container.Binding{Key: "b", Provider: func(a string) string { return a + "b" }, Mode: container.Instance, Dependencies: []string{"a"}})
	c.Register(container.Binding{Key: "loop", Provider: func(any) any { return nil }, Dependencies: []string{"loop"}})
	return c
}

func TestCollector_CountsResolutions(t *testing.T) {
	m := metrics.NewCollector()
	c := newContainer(t)
	m.Instrument(c)

	_, err := c.Get("b")
	require.NoError(t, err)
	_, err = c.Get("b")
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Resolutions.WithLabelValues("b", "instance")))
	// nested resolution of a counts too, cache hit included
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Resolutions.WithLabelValues("a", "cache_instance")))
}

func TestCollector_ObserveError(t *testing.T) {
	m := metrics.NewCollector()
	c := newContainer(t)

	_, err := c.Get("missing")
	m.ObserveError(err)
	_, err = c.Get("loop")
	m.ObserveError(err)
	m.ObserveError(nil)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Errors.WithLabelValues(metrics.KindUnknownKey)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Errors.WithLabelValues(metrics.KindCyclic)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Errors))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unknown", &container.UnknownKeyError{Key: "x"}, metrics.KindUnknownKey},
		{"cyclic", &container.CyclicDependencyError{Key: "x", Keychain: []string{"x"}}, metrics.KindCyclic},
		{"invalid", &container.InvalidProviderError{Key: "x", Mode: container.Value, Reason: "r"}, metrics.KindInvalidProvider},
		{"mismatch", &container.TypeMismatchError{Key: "x", Expected: "int", Got: "string"}, metrics.KindTypeMismatch},
		{"provider", errors.New("boom"), metrics.KindProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.Kind(tt.err))
		})
	}
}

func TestCollector_SeparateRegistries(t *testing.T) {
	a, b := metrics.NewCollector(), metrics.NewCollector()
	a.ObserveError(errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(a.Errors.WithLabelValues(metrics.KindProvider)))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Errors.WithLabelValues(metrics.KindProvider)))
}

func TestCollector_Handler(t *testing.T) {
	m := metrics.NewCollector()
	c := newContainer(t)
	m.Instrument(c)
	_, err := c.Get("a")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `injector_resolutions_total{key="a",mode="cache_instance"} 1`)
}
