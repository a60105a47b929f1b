package realtime

import (
	"sync"
)

// Registry tracks live connections and the logical scopes they can be
// addressed through: conversation rooms (keyed by a canonical pair id) and
// per-user personal channels covering every connection a user owns.
//
// It is the only process-wide mutable structure in the realtime layer. All
// state lives behind one RWMutex; broadcasts take the read lock so unrelated
// fan-outs proceed concurrently. The registry is created at process start and
// torn down with Close at shutdown.
type Registry struct {
	mu        sync.RWMutex
	conns     map[string]*Connection            // connID -> connection
	userConns map[string]map[string]*Connection // userID -> connID -> connection
	rooms     map[string]map[string]*Connection // roomID -> connID -> connection
	connRooms map[string]map[string]struct{}    // connID -> set of roomIDs
}

// NewRegistry constructs an initialized Registry.
func NewRegistry() *Registry {
	return &Registry{
		conns:     make(map[string]*Connection),
		userConns: make(map[string]map[string]*Connection),
		rooms:     make(map[string]map[string]*Connection),
		connRooms: make(map[string]map[string]struct{}),
	}
}

// Register tracks an authenticated connection and subscribes it to its
// owner's personal channel. Multiple connections per user are allowed; each
// is tracked independently. The caller owns the connection lifecycle and
// starts its write loop.
func (r *Registry) Register(conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[conn.ID] = conn

	owned := r.userConns[conn.UserID]
	if owned == nil {
		owned = make(map[string]*Connection)
		r.userConns[conn.UserID] = owned
	}
	owned[conn.ID] = conn

	r.connRooms[conn.ID] = make(map[string]struct{})
}

// Unregister removes the connection, its personal-channel subscription and
// every room membership. Idempotent: unknown connections are ignored.
func (r *Registry) Unregister(conn *Connection) {
	r.mu.Lock()
	r.unregisterLocked(conn.ID)
	r.mu.Unlock()
}

// Join subscribes the connection to the room. Idempotent set-add; joining a
// room twice is a no-op. Connections that were never registered (or already
// unregistered) are ignored.
func (r *Registry) Join(roomID string, conn *Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[conn.ID]; !ok {
		return
	}

	room := r.rooms[roomID]
	if room == nil {
		room = make(map[string]*Connection)
		r.rooms[roomID] = room
	}
	room[conn.ID] = conn

	memberships := r.connRooms[conn.ID]
	if memberships == nil {
		memberships = make(map[string]struct{})
		r.connRooms[conn.ID] = memberships
	}
	memberships[roomID] = struct{}{}
}

// Leave removes the connection from the room.
func (r *Registry) Leave(roomID string, conn *Connection) {
	r.mu.Lock()
	r.leaveLocked(roomID, conn.ID)
	r.mu.Unlock()
}

// Broadcast writes payload to every connection currently subscribed to the
// room, whichever user owns it. Returns the number of successful deliveries.
func (r *Registry) Broadcast(roomID string, payload []byte) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := 0
	for _, conn := range r.rooms[roomID] {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// NotifyUser delivers payload to every connection owned by the user (the
// personal channel). Returns the number of successful deliveries; zero when
// the user has no live connection.
func (r *Registry) NotifyUser(userID string, payload []byte) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := 0
	for _, conn := range r.userConns[userID] {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// Close terminates all tracked connections and clears registry state.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]*Connection, 0, len(r.conns))
	for _, conn := range r.conns {
		conns = append(conns, conn)
	}
	r.conns = make(map[string]*Connection)
	r.userConns = make(map[string]map[string]*Connection)
	r.rooms = make(map[string]map[string]*Connection)
	r.connRooms = make(map[string]map[string]struct{})
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close(1001, "registry shutdown")
	}
}

func (r *Registry) unregisterLocked(connID string) {
	conn, ok := r.conns[connID]
	if !ok {
		return
	}
	delete(r.conns, connID)

	if owned, ok := r.userConns[conn.UserID]; ok {
		delete(owned, connID)
		if len(owned) == 0 {
			delete(r.userConns, conn.UserID)
		}
	}

	for roomID := range r.connRooms[connID] {
		r.leaveLocked(roomID, connID)
	}
	delete(r.connRooms, connID)
}

func (r *Registry) leaveLocked(roomID string, connID string) {
	room := r.rooms[roomID]
	if room == nil {
		return
	}
	delete(room, connID)
	if len(room) == 0 {
		delete(r.rooms, roomID)
	}
	if memberships, ok := r.connRooms[connID]; ok {
		delete(memberships, roomID)
	}
}
