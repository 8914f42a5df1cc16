package isovox

import (
	"testing"

	"github.com/gogpu/isovox/internal/invariant"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.shadeQueueCap != DefaultShadeQueueCapacity {
		t.Errorf("shadeQueueCap = %d, want %d", o.shadeQueueCap, DefaultShadeQueueCapacity)
	}
	if o.renderQueueCap != DefaultRenderQueueCapacity {
		t.Errorf("renderQueueCap = %d, want %d", o.renderQueueCap, DefaultRenderQueueCapacity)
	}
	if o.palette != DefaultPalette() {
		t.Errorf("palette = %+v, want default", o.palette)
	}
	if o.checks.On != invariant.Enabled {
		t.Errorf("checks.On = %v, want build default %v", o.checks.On, invariant.Enabled)
	}
}

func TestOptionsApplied(t *testing.T) {
	pal := Palette{X: rgba(1, 0, 0), Y: rgba(0, 1, 0), Z: rgba(0, 0, 1)}
	v := newTestVolume(t, 8, 8, 8,
		WithShadeQueueCapacity(100),
		WithRenderQueueCapacity(10),
		WithPalette(pal),
		WithRotation(3))

	if v.shadeQueue.Cap() != 100 {
		t.Errorf("shade queue cap = %d, want 100", v.shadeQueue.Cap())
	}
	if v.renderQueue.Cap() != 10 {
		t.Errorf("render queue cap = %d, want 10", v.renderQueue.Cap())
	}
	if v.palette != pal {
		t.Errorf("palette = %+v, want %+v", v.palette, pal)
	}
	if v.Rotation() != 3 {
		t.Errorf("Rotation() = %d, want 3", v.Rotation())
	}
	if !v.checks.On {
		t.Error("WithInvariantChecks(true) not applied")
	}
}

func TestWithInvariantChecksCatchesBadState(t *testing.T) {
	v := newTestVolume(t, 8, 8, 8)

	defer func() {
		if recover() == nil {
			t.Error("Flush with a corrupted full-update state did not panic")
		}
	}()

	// Simulate a flush that failed to drain: a queued entry survives.
	v.Put(1, 1, 1, 1)
	v.fullUpdate = true
	v.Flush()
}
