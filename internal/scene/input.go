package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerKind distinguishes movement from presses.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
)

// PointerEvent is a mouse or touch event in screen coordinates.
type PointerEvent struct {
	Kind  PointerKind
	X, Y  float64
	Touch bool
}

// PointerTracker turns ebiten's polled input state into events.
type PointerTracker struct {
	lastX, lastY int
	seen         bool
	touchIDs     []ebiten.TouchID
}

// Poll returns this tick's events: touch starts, touch drags, cursor moves
// and left clicks, in that order.
func (t *PointerTracker) Poll() []PointerEvent {
	var events []PointerEvent

	t.touchIDs = inpututil.AppendJustPressedTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{Kind: PointerPress, X: float64(x), Y: float64(y), Touch: true})
	}

	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x != px || y != py {
			events = append(events, PointerEvent{Kind: PointerMove, X: float64(x), Y: float64(y), Touch: true})
		}
	}

	mx, my := ebiten.CursorPosition()
	if t.seen && (mx != t.lastX || my != t.lastY) {
		events = append(events, PointerEvent{Kind: PointerMove, X: float64(mx), Y: float64(my)})
	}
	t.lastX, t.lastY, t.seen = mx, my, true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, PointerEvent{Kind: PointerPress, X: float64(mx), Y: float64(my)})
	}
	return events
}
