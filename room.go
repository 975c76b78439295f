package main

import "time"

type RoomState string

const (
	StateWaiting  RoomState = "waiting"
	StateReady    RoomState = "ready"
	StatePlaying  RoomState = "playing"
	StateFinished RoomState = "finished"
)

// Room pairs a host and a guest for one signaling session. The registry is
// the only owner of the live record; operations hand out copies.
type Room struct {
	ID        string
	Host      ConnID
	Guest     ConnID
	State     RoomState
	CreatedAt time.Time
	StartedAt time.Time
}

// HasGuest reports whether the guest slot is occupied.
func (r Room) HasGuest() bool {
	return r.Guest != ""
}

// Counterpart returns the other occupant of the room, or "" if the sender
// currently has no peer.
func (r Room) Counterpart(sender ConnID) ConnID {
	if sender == r.Host {
		return r.Guest
	}
	return r.Host
}

// AvailableRoom is the public projection of a joinable room. Occupant
// identities are never exposed through listings.
type AvailableRoom struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`
}
