package ui

import "essentials/internal/content"

// TabFocus tracks which tab button has keyboard focus and rotates through the
// buttons in order. Focus is a rendering aid only; it never changes Selection.
type TabFocus struct {
	Order   []content.TopicID // Tab order for focus rotation
	current int
}

// NewTabFocus focuses the first entry of order.
func NewTabFocus(order []content.TopicID) TabFocus {
	return TabFocus{Order: order}
}

// Current returns the focused topic. ok is false when Order is empty.
func (f *TabFocus) Current() (topic content.TopicID, ok bool) {
	if len(f.Order) == 0 {
		return 0, false
	}
	return f.Order[f.current], true
}

// Next advances focus, wrapping past the last button.
func (f *TabFocus) Next() {
	if len(f.Order) == 0 {
		return
	}
	f.current = (f.current + 1) % len(f.Order)
}

// Prev moves focus back, wrapping before the first button.
func (f *TabFocus) Prev() {
	if len(f.Order) == 0 {
		return
	}
	f.current--
	if f.current < 0 {
		f.current = len(f.Order) - 1
	}
}

// Set focuses topic. Returns false if topic is not in Order.
func (f *TabFocus) Set(topic content.TopicID) bool {
	for i, t := range f.Order {
		if t == topic {
			f.current = i
			return true
		}
	}
	return false
}

// Is reports whether topic has focus.
func (f *TabFocus) Is(topic content.TopicID) bool {
	cur, ok := f.Current()
	return ok && cur == topic
}
