package textarea

import (
	"sync"
	"testing"
)

func TestViewportRoundTrip(t *testing.T) {
	vals := []uint16{0, 1, 7, 255, 256, 0x7fff, 0xfffe, 0xffff}
	var v Viewport
	for _, row := range vals {
		for _, col := range vals {
			v.store(row, col, 80, 24)
			gr, gc := v.ScrollTop()
			if gr != row || gc != col {
				t.Fatalf("ScrollTop() = (%d, %d), want (%d, %d)", gr, gc, row, col)
			}
			r, c, w, h := v.Rect()
			if r != row || c != col || w != 80 || h != 24 {
				t.Fatalf("Rect() = (%d, %d, %d, %d), want (%d, %d, 80, 24)", r, c, w, h, row, col)
			}
		}
	}
	v.store(0xffff, 0xffff, 0xffff, 0xffff)
	r, c, w, h := v.Rect()
	if r != 0xffff || c != 0xffff || w != 0xffff || h != 0xffff {
		t.Fatalf("max quadruple did not round-trip: (%d, %d, %d, %d)", r, c, w, h)
	}
}

func TestViewportZeroValue(t *testing.T) {
	var v Viewport
	if r, c, w, h := v.Rect(); r != 0 || c != 0 || w != 0 || h != 0 {
		t.Fatalf("zero viewport Rect() = (%d, %d, %d, %d)", r, c, w, h)
	}
}

func TestViewportScrollSaturates(t *testing.T) {
	var v Viewport
	v.store(5, 3, 80, 24)

	v.Scroll(-100, -100)
	if r, c := v.ScrollTop(); r != 0 || c != 0 {
		t.Fatalf("expected clamp to origin, got (%d, %d)", r, c)
	}

	v.Scroll(1<<20, 1<<20)
	if r, c := v.ScrollTop(); r != 0xffff || c != 0xffff {
		t.Fatalf("expected clamp to max, got (%d, %d)", r, c)
	}

	// Dimensions ride along untouched.
	if _, _, w, h := v.Rect(); w != 80 || h != 24 {
		t.Fatalf("scroll touched dimensions: (%d, %d)", w, h)
	}
}

func TestViewportScrollByDelta(t *testing.T) {
	var v Viewport
	v.store(10, 4, 80, 24)
	v.Scroll(3, -2)
	if r, c := v.ScrollTop(); r != 13 || c != 2 {
		t.Fatalf("expected (13, 2), got (%d, %d)", r, c)
	}
}

func TestViewportPositionBounds(t *testing.T) {
	var v Viewport
	v.store(10, 5, 80, 24)
	top, left, bottom, right := v.Position()
	if top != 10 || left != 5 || bottom != 33 || right != 84 {
		t.Fatalf("Position() = (%d, %d, %d, %d)", top, left, bottom, right)
	}

	// Zero-sized rectangles must not underflow below the top-left corner.
	v.store(7, 9, 0, 0)
	top, left, bottom, right = v.Position()
	if bottom < top || right < left {
		t.Fatalf("degenerate bounds: (%d, %d, %d, %d)", top, left, bottom, right)
	}
	if top != 7 || left != 9 || bottom != 7 || right != 9 {
		t.Fatalf("Position() = (%d, %d, %d, %d), want (7, 9, 7, 9)", top, left, bottom, right)
	}
}

func TestViewportClone(t *testing.T) {
	var v Viewport
	v.store(3, 4, 10, 20)
	c := v.Clone()

	v.store(9, 9, 9, 9)
	if r, col, w, h := c.Rect(); r != 3 || col != 4 || w != 10 || h != 20 {
		t.Fatalf("clone shares backing state: (%d, %d, %d, %d)", r, col, w, h)
	}
}

func TestViewportConcurrentReaders(t *testing.T) {
	var v Viewport
	var wg sync.WaitGroup
	done := make(chan struct{})

	// The writer only ever produces states with row == col and width ==
	// height, so any torn read shows up as a mismatched pair.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5000; i++ {
			n := uint16(i)
			v.store(n, n, n, n)
			v.Scroll(1, 1)
		}
		close(done)
	}()

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if r, c, w, h := v.Rect(); r != c || w != h {
					t.Errorf("torn read: (%d, %d, %d, %d)", r, c, w, h)
					return
				}
			}
		}()
	}
	wg.Wait()
}
