package hal

import (
	"reflect"
	"testing"
)

func TestRowTrackerDirty(t *testing.T) {
	const (
		stride = 8
		rows   = 10
	)
	buf := make([]byte, stride*rows)
	rt := newRowTracker(rows, 0)

	if have, want := rt.dirty(buf, stride), []rowSpan{{0, rows}}; !reflect.DeepEqual(have, want) {
		t.Fatalf("first frame\nhave %v\nwant %v", have, want)
	}
	if have := rt.dirty(buf, stride); len(have) != 0 {
		t.Fatalf("unchanged frame: have %v, want no spans", have)
	}

	buf[3*stride] = 1
	buf[4*stride+7] = 1
	buf[8*stride+2] = 1
	if have, want := rt.dirty(buf, stride), []rowSpan{{3, 5}, {8, 9}}; !reflect.DeepEqual(have, want) {
		t.Fatalf("changed rows\nhave %v\nwant %v", have, want)
	}
	if have := rt.dirty(buf, stride); len(have) != 0 {
		t.Fatalf("after resend: have %v, want no spans", have)
	}

	// Writing the old bytes back is a change too.
	buf[8*stride+2] = 0
	if have, want := rt.dirty(buf, stride), []rowSpan{{8, 9}}; !reflect.DeepEqual(have, want) {
		t.Fatalf("reverted row\nhave %v\nwant %v", have, want)
	}
}

func TestRowTrackerGap(t *testing.T) {
	const (
		stride = 4
		rows   = 12
	)
	buf := make([]byte, stride*rows)
	rt := newRowTracker(rows, 3)
	rt.dirty(buf, stride)

	buf[1*stride] = 9
	buf[4*stride] = 9
	buf[10*stride] = 9
	if have, want := rt.dirty(buf, stride), []rowSpan{{1, 5}, {10, 11}}; !reflect.DeepEqual(have, want) {
		t.Fatalf("have %v\nwant %v", have, want)
	}
}

func TestRowTrackerInvalidate(t *testing.T) {
	buf := make([]byte, 2*5)
	rt := newRowTracker(5, 0)
	rt.dirty(buf, 2)
	rt.invalidate()
	if have, want := rt.dirty(buf, 2), []rowSpan{{0, 5}}; !reflect.DeepEqual(have, want) {
		t.Fatalf("have %v\nwant %v", have, want)
	}
}

func TestRowTrackerLetterboxedFrame(t *testing.T) {
	// A 320x320 RGB565 panel showing a 320x240 picture: the bars never
	// change, so only the picture band is resent.
	const (
		w, h   = 320, 320
		stride = w * 2
	)
	buf := make([]byte, stride*h)
	rt := newRowTracker(h, 4)
	rt.dirty(buf, stride)

	for y := 100; y < 220; y++ {
		buf[y*stride+w] = byte(y)
	}
	have := rt.dirty(buf, stride)
	if want := []rowSpan{{100, 220}}; !reflect.DeepEqual(have, want) {
		t.Fatalf("have %v\nwant %v", have, want)
	}
}
