package hal

// rowSpan is a band of framebuffer rows [y0, y1).
type rowSpan struct {
	y0, y1 int
}

// rowTracker keeps an FNV-1a sum per framebuffer row so a panel driver can
// send only the bands that changed since the previous frame. Dirty rows
// closer than gap rows are merged into one band.
type rowTracker struct {
	sums   []uint32
	spans  []rowSpan
	gap    int
	primed bool
}

func newRowTracker(rows, gap int) *rowTracker {
	return &rowTracker{sums: make([]uint32, rows), gap: gap}
}

// invalidate makes the next dirty call report every row.
func (t *rowTracker) invalidate() { t.primed = false }

// dirty hashes each row of buf and returns the changed bands, top to bottom.
// The returned slice is reused by the next call.
func (t *rowTracker) dirty(buf []byte, stride int) []rowSpan {
	t.spans = t.spans[:0]
	for y := range t.sums {
		sum := rowSum(buf[y*stride : (y+1)*stride])
		if t.primed && sum == t.sums[y] {
			continue
		}
		t.sums[y] = sum
		if n := len(t.spans); n > 0 && y-t.spans[n-1].y1 <= t.gap {
			t.spans[n-1].y1 = y + 1
			continue
		}
		t.spans = append(t.spans, rowSpan{y, y + 1})
	}
	t.primed = true
	return t.spans
}

func rowSum(b []byte) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for _, c := range b {
		h ^= uint32(c)
		h *= prime32
	}
	return h
}
