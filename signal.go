package touchui

// Slot is a callback subscribed to a Signal.
type Slot func(args ...any)

// Conn identifies one subscription, for disconnecting. Go functions have no
// identity of their own, so Connect hands out the handle.
type Conn struct {
	sig *Signal
	id  uint64
}

// Disconnect removes the subscription from its signal. Calling it on the
// zero Conn or twice is a no-op.
func (c Conn) Disconnect() {
	if c.sig != nil {
		c.sig.Disconnect(c)
	}
}

// Signal is an event source views expose, e.g. a button's OnClicked.
// Slots are invoked synchronously in subscription order. Connecting the same
// function twice invokes it twice. The zero Signal is ready for use.
type Signal struct {
	slots  []slotEntry
	lastID uint64
}

type slotEntry struct {
	id uint64
	fn Slot
}

// Connect appends fn to the subscriber list and returns its handle.
func (s *Signal) Connect(fn Slot) Conn {
	s.lastID++
	s.slots = append(s.slots, slotEntry{s.lastID, fn})
	return Conn{s, s.lastID}
}

// Disconnect removes the matching subscription if present.
func (s *Signal) Disconnect(c Conn) {
	for i, e := range s.slots {
		if e.id == c.id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			return
		}
	}
}

// Emit invokes each slot subscribed at the time of the call, in subscription
// order, with args. A slot disconnecting itself does not disturb the pass.
// A panicking slot propagates to the caller; the toolkit does not catch it.
func (s *Signal) Emit(args ...any) {
	entries := make([]slotEntry, len(s.slots))
	copy(entries, s.slots)
	for _, e := range entries {
		e.fn(args...)
	}
}
