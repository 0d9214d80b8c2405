package preview

import (
	"math"
	"testing"
)

func TestNewFrameBufferInitialization(t *testing.T) {
	fb := NewFrameBuffer(4, 3)

	if fb.Width != 4 || fb.Height != 3 {
		t.Fatalf("dimensions = (%d, %d), want (4, 3)", fb.Width, fb.Height)
	}
	if len(fb.Color) != 4*3*4 {
		t.Fatalf("color buffer length = %d, want %d", len(fb.Color), 4*3*4)
	}
	for i, v := range fb.Color {
		if v != 0 {
			t.Fatalf("color[%d] = %d, want 0", i, v)
		}
	}
	if len(fb.ZBuf) != 4*3 {
		t.Fatalf("zbuf length = %d, want %d", len(fb.ZBuf), 4*3)
	}
	for i, v := range fb.ZBuf {
		if !math.IsInf(v, -1) {
			t.Fatalf("zbuf[%d] = %v, want -Inf", i, v)
		}
	}
}
