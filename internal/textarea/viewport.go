package textarea

import "sync/atomic"

// Viewport records the scroll offset and dimensions of the last-rendered
// window so the next render can scroll relative to what was actually shown.
//
// View is called on a value copy of the widget model, so the viewport needs
// interior mutability. The four u16 fields are packed into a single u64
// (width<<48 | height<<32 | row<<16 | col) and read/written atomically;
// application code may inspect the position from other goroutines between
// renders without ever observing a torn rectangle.
//
// Single writer (the render pass), any number of readers. The zero value is
// ready to use.
type Viewport struct {
	packed atomic.Uint64
}

// ScrollTop returns the buffer row and rendered column displayed at the
// top-left of the last-rendered window.
func (v *Viewport) ScrollTop() (row, col uint16) {
	u := v.packed.Load()
	return uint16(u >> 16), uint16(u)
}

// Rect returns the scroll offset and the dimensions of the last-rendered
// window as one consistent snapshot.
func (v *Viewport) Rect() (row, col, width, height uint16) {
	u := v.packed.Load()
	return uint16(u >> 16), uint16(u), uint16(u >> 48), uint16(u >> 32)
}

// Position returns the inclusive bounds of the visible window, usable for
// "is this buffer coordinate on screen" checks. Bottom and right never fall
// below top and left, even for a zero-sized rectangle.
func (v *Viewport) Position() (topRow, topCol, bottomRow, bottomCol uint16) {
	row, col, width, height := v.Rect()
	bottomRow = satSub(satAdd(row, height), 1)
	bottomCol = satSub(satAdd(col, width), 1)
	if bottomRow < row {
		bottomRow = row
	}
	if bottomCol < col {
		bottomCol = col
	}
	return row, col, bottomRow, bottomCol
}

// store overwrites all four fields as a single unit. The render pass calls
// this exactly once per frame, with the rectangle it actually painted.
func (v *Viewport) store(row, col, width, height uint16) {
	v.packed.Store(uint64(width)<<48 | uint64(height)<<32 | uint64(row)<<16 | uint64(col))
}

// Scroll adjusts the offset by signed deltas, clamping at zero and at the
// largest representable offset. Dimensions are left untouched. Safe to call
// while concurrent reads are in flight.
func (v *Viewport) Scroll(rows, cols int) {
	for {
		u := v.packed.Load()
		row := applyDelta(uint16(u>>16), rows)
		col := applyDelta(uint16(u), cols)
		next := u&0xffff_ffff_0000_0000 | uint64(row)<<16 | uint64(col)
		if v.packed.CompareAndSwap(u, next) {
			return
		}
	}
}

// Clone returns an independent viewport holding the same snapshot.
func (v *Viewport) Clone() *Viewport {
	c := &Viewport{}
	c.packed.Store(v.packed.Load())
	return c
}

func applyDelta(pos uint16, delta int) uint16 {
	n := int(pos) + delta
	if n < 0 {
		return 0
	}
	if n > 0xffff {
		return 0xffff
	}
	return uint16(n)
}

func satAdd(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s <= 0xffff {
		return uint16(s)
	}
	return 0xffff
}

func satSub(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}
