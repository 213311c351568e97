// Package signal implements synchronous in-process notifications.
//
// A Signal delivers each Emit to its listeners on the caller's goroutine, in
// connection order. Connect returns a Conn owned by the subscriber; releasing
// it is the only way to stop delivery, so subscribers keep the handle and
// Disconnect it on teardown (typically with defer or in Close).
package signal

// Signal is a list of listeners for events of type T.
// The zero value is ready to use. A Signal is not safe for concurrent use.
type Signal[T any] struct {
	conns []*Conn
	// emitting guards against slice mutation while listeners run
	emitting int
	dirty    bool
}

// Conn is an owned subscription handle.
type Conn struct {
	fn     any
	remove func(*Conn)
	live   bool
}

// Connect registers fn and returns its handle.
func (s *Signal[T]) Connect(fn func(T)) *Conn {
	c := &Conn{fn: fn, live: true}
	c.remove = func(c *Conn) { s.disconnect(c) }
	s.conns = append(s.conns, c)
	return c
}

// Emit calls every live listener with v.
// Listeners connected during Emit are not called until the next Emit;
// listeners disconnected during Emit are skipped.
func (s *Signal[T]) Emit(v T) {
	s.emitting++
	n := len(s.conns)
	for i := 0; i < n; i++ {
		c := s.conns[i]
		if !c.live {
			continue
		}
		c.fn.(func(T))(v)
	}
	s.emitting--
	if s.emitting == 0 && s.dirty {
		s.compact()
	}
}

// Len returns the number of live listeners.
func (s *Signal[T]) Len() int {
	n := 0
	for _, c := range s.conns {
		if c.live {
			n++
		}
	}
	return n
}

func (s *Signal[T]) disconnect(c *Conn) {
	if s.emitting > 0 {
		s.dirty = true
		return
	}
	s.compact()
}

func (s *Signal[T]) compact() {
	live := s.conns[:0]
	for _, c := range s.conns {
		if c.live {
			live = append(live, c)
		}
	}
	for i := len(live); i < len(s.conns); i++ {
		s.conns[i] = nil
	}
	s.conns = live
	s.dirty = false
}

// Disconnect stops delivery to the listener. Safe to call more than once
// and on a nil Conn.
func (c *Conn) Disconnect() {
	if c == nil || !c.live {
		return
	}
	c.live = false
	c.remove(c)
}

// Connected reports whether the handle still receives events.
func (c *Conn) Connected() bool {
	return c != nil && c.live
}

// Group releases several connections together.
type Group []*Conn

// Add appends a connection to the group.
func (g *Group) Add(c *Conn) {
	*g = append(*g, c)
}

// Disconnect releases every connection in the group and empties it.
func (g *Group) Disconnect() {
	for _, c := range *g {
		c.Disconnect()
	}
	*g = nil
}
