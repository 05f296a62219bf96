// Package chat implements the room-based message relay for live streams.
// The Hub is constructor-scoped: callers create one per process and pass
// it explicitly, there is no package-level registry.
package chat

import (
	"sync"
)

// Session is one connected chat participant. Outbound messages go through
// a buffered channel drained by the transport's write loop; when the
// buffer is full the message is dropped so one slow reader cannot stall a
// broadcast to the rest of the room.
type Session struct {
	out    chan []byte
	closed chan struct{}
	once   sync.Once
}

func NewSession(buffer int) *Session {
	return &Session{
		out:    make(chan []byte, buffer),
		closed: make(chan struct{}),
	}
}

// Messages returns the channel the transport writes from.
func (s *Session) Messages() <-chan []byte {
	return s.out
}

// Closed is signalled when the session is shut down.
func (s *Session) Closed() <-chan struct{} {
	return s.closed
}

func (s *Session) Close() {
	s.once.Do(func() { close(s.closed) })
}

// deliver queues a message without blocking. Reports whether the message
// was accepted.
func (s *Session) deliver(message []byte) bool {
	select {
	case <-s.closed:
		return false
	default:
	}
	select {
	case s.out <- message:
		return true
	default:
		return false
	}
}

// Hub maintains per-room session sets. Rooms are created on first join
// and destroyed when the last session leaves.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*Session]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Session]struct{}),
	}
}

func (h *Hub) Join(room string, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Session]struct{})
	}
	h.rooms[room][s] = struct{}{}
}

func (h *Hub) Leave(room string, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sessions, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(sessions, s)
	if len(sessions) == 0 {
		delete(h.rooms, room)
	}
}

// Broadcast delivers the message to every session currently in the room,
// best-effort. Delivery failures are isolated per session.
func (h *Hub) Broadcast(room string, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.rooms[room] {
		s.deliver(message)
	}
}

func (h *Hub) RoomSize(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}

// Close shuts down every session and empties the registry. Used on
// process shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, sessions := range h.rooms {
		for s := range sessions {
			s.Close()
		}
		delete(h.rooms, room)
	}
}
