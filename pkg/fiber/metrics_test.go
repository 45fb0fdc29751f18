package fiber

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/vfiber/pkg/vdom"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))
	h := newHarness(t, WithMetrics(m))

	if err := h.engine.Render(vdom.Div(vdom.Class("a"), "x"), h.root); err != nil {
		t.Fatal(err)
	}
	h.sched.Drain(1)

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"units", m.units, 3},
		{"slices", m.slices, 3},
		{"yields", m.yields, 2},
		{"commits", m.commits, 1},
		{"create_element", m.hostOps.WithLabelValues("create_element"), 1},
		{"create_text", m.hostOps.WithLabelValues("create_text"), 1},
		{"set_property", m.hostOps.WithLabelValues("set_property"), 1},
		{"append_child", m.hostOps.WithLabelValues("append_child"), 2},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.c); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}

	if n := testutil.CollectAndCount(m.commitDuration); n != 1 {
		t.Errorf("commit duration series = %d, want 1", n)
	}
	if n, err := testutil.GatherAndCount(reg, "test_commits_total"); err != nil || n != 1 {
		t.Errorf("GatherAndCount = %d, %v", n, err)
	}
}
