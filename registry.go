package main

import (
	"sync"
	"time"
)

// Registry owns every live room. All access goes through one mutex so that
// two joins racing on the same room can never both claim the guest slot.
type Registry struct {
	rooms map[string]*Room
	lock  sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// CreateRoom inserts a fresh waiting room owned by the given host. Codes are
// regenerated until unused; an existing room is never overwritten.
func (r *Registry) CreateRoom(host ConnID) Room {
	r.lock.Lock()
	defer r.lock.Unlock()
	var code string
	for {
		code = GenerateRoomCode()
		if _, exists := r.rooms[code]; !exists {
			break
		}
	}
	room := &Room{
		ID:        code,
		Host:      host,
		State:     StateWaiting,
		CreatedAt: time.Now(),
	}
	r.rooms[code] = room
	return *room
}

// JoinRoom binds a guest to the room. Repeated joins by either occupant are
// tolerated and return the room unchanged; a third identity is rejected once
// the room has left the waiting state or the guest slot is taken.
func (r *Registry) JoinRoom(roomID string, guest ConnID) (Room, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	room, exists := r.rooms[roomID]
	if !exists {
		return Room{}, ErrRoomNotFound
	}
	if room.Guest == guest && room.HasGuest() {
		return *room, nil
	}
	if room.Host == guest {
		return *room, nil
	}
	if room.State != StateWaiting {
		return Room{}, ErrRoomNotJoinable
	}
	if room.HasGuest() {
		return Room{}, ErrRoomFull
	}
	room.Guest = guest
	room.State = StateReady
	room.StartedAt = time.Now()
	return *room, nil
}

func (r *Registry) GetRoom(roomID string) (Room, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	room, exists := r.rooms[roomID]
	if !exists {
		return Room{}, false
	}
	return *room, true
}

// AvailableRooms lists every room still waiting for a guest.
func (r *Registry) AvailableRooms() []AvailableRoom {
	r.lock.Lock()
	defer r.lock.Unlock()
	available := make([]AvailableRoom, 0)
	for _, room := range r.rooms {
		if room.State == StateWaiting {
			available = append(available, AvailableRoom{
				ID:        room.ID,
				CreatedAt: room.CreatedAt.UnixMilli(),
			})
		}
	}
	return available
}

// RoomCount returns the number of live rooms regardless of state.
func (r *Registry) RoomCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.rooms)
}

// RemoveRoom deletes the room unconditionally; removing an unknown id is a
// no-op.
func (r *Registry) RemoveRoom(roomID string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.rooms, roomID)
}

// CleanupInactive removes every waiting room older than the timeout and
// returns how many were dropped. Rooms that found a guest are kept no matter
// their age.
func (r *Registry) CleanupInactive(timeout time.Duration) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	now := time.Now()
	cleaned := 0
	for roomID, room := range r.rooms {
		if room.State == StateWaiting && now.Sub(room.CreatedAt) > timeout {
			delete(r.rooms, roomID)
			cleaned++
		}
	}
	return cleaned
}
