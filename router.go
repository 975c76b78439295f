package main

import (
	"encoding/json"
	"errors"
)

// Signal is a routing decision: a frame addressed to a single connection.
// An empty Target means there is nothing to deliver.
type Signal struct {
	Target ConnID
	Data   []byte
}

// Router computes relay targets from current room occupancy. It never
// mutates room state; the target is always whichever of host/guest is not
// the sender, so it stays correct as membership changes.
type Router struct {
	registry *Registry
}

func NewRouter(registry *Registry) *Router {
	return &Router{registry}
}

func (r *Router) resolveTarget(roomID string, sender ConnID) (ConnID, error) {
	room, exists := r.registry.GetRoom(roomID)
	if !exists {
		return "", ErrRoomNotFound
	}
	return room.Counterpart(sender), nil
}

// RouteOffer forwards an SDP offer to the sender's peer. A missing peer is a
// no-op, not an error: offers may race with join completion.
func (r *Router) RouteOffer(roomID string, sender ConnID, offer json.RawMessage) (Signal, error) {
	target, err := r.resolveTarget(roomID, sender)
	if err != nil || target == "" {
		return Signal{}, err
	}
	return Signal{Target: target, Data: EncodeOffer(offer, sender)}, nil
}

// RouteAnswer forwards an SDP answer to the sender's peer.
func (r *Router) RouteAnswer(roomID string, sender ConnID, answer json.RawMessage) (Signal, error) {
	target, err := r.resolveTarget(roomID, sender)
	if err != nil || target == "" {
		return Signal{}, err
	}
	return Signal{Target: target, Data: EncodeAnswer(answer, sender)}, nil
}

// RouteIceCandidate forwards an ICE candidate to the sender's peer.
// Candidate exchange is best-effort: a vanished room drops the candidate
// silently instead of reporting an error.
func (r *Router) RouteIceCandidate(roomID string, sender ConnID, candidate json.RawMessage) Signal {
	target, err := r.resolveTarget(roomID, sender)
	if errors.Is(err, ErrRoomNotFound) || target == "" {
		return Signal{}
	}
	return Signal{Target: target, Data: EncodeIceCandidate(candidate, sender)}
}
