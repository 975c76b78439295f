package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairedRoom(t *testing.T, registry *Registry) Room {
	t.Helper()
	room := registry.CreateRoom("host-1")
	joined, err := registry.JoinRoom(room.ID, "guest-1")
	require.NoError(t, err)
	return joined
}

func TestRouteOfferHostToGuest(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)
	room := pairedRoom(t, registry)

	signal, err := router.RouteOffer(room.ID, room.Host, json.RawMessage(`{"sdp":"x"}`))

	require.NoError(t, err)
	assert.Equal(t, room.Guest, signal.Target)
	frame := UnmarshalJSON[offerRelayMessage](signal.Data)
	assert.Equal(t, "offer", frame.Type)
	assert.JSONEq(t, `{"sdp":"x"}`, string(frame.Offer))
	assert.Equal(t, room.Host, frame.From)
}

func TestRouteAnswerGuestToHost(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)
	room := pairedRoom(t, registry)

	signal, err := router.RouteAnswer(room.ID, room.Guest, json.RawMessage(`{"sdp":"y"}`))

	require.NoError(t, err)
	assert.Equal(t, room.Host, signal.Target)
	frame := UnmarshalJSON[answerRelayMessage](signal.Data)
	assert.Equal(t, "answer", frame.Type)
	assert.JSONEq(t, `{"sdp":"y"}`, string(frame.Answer))
	assert.Equal(t, room.Guest, frame.From)
}

func TestRouteOfferNoGuestYet(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)
	room := registry.CreateRoom("host-1")

	signal, err := router.RouteOffer(room.ID, room.Host, json.RawMessage(`{}`))

	require.NoError(t, err, "missing peer is a no-op, not an error")
	assert.Empty(t, signal.Target)
}

func TestRouteOfferRoomMissing(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)

	_, err := router.RouteOffer("NOSUCH", "host-1", json.RawMessage(`{}`))

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRouteIceCandidate(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)
	room := pairedRoom(t, registry)

	signal := router.RouteIceCandidate(room.ID, room.Guest, json.RawMessage(`{"candidate":"c0"}`))

	assert.Equal(t, room.Host, signal.Target)
	frame := UnmarshalJSON[candidateRelayMessage](signal.Data)
	assert.Equal(t, "ice-candidate", frame.Type)
	assert.JSONEq(t, `{"candidate":"c0"}`, string(frame.Candidate))
	assert.Equal(t, room.Guest, frame.From)
}

func TestRouteIceCandidateRoomMissingDropsSilently(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)

	signal := router.RouteIceCandidate("NOSUCH", "host-1", json.RawMessage(`{}`))

	assert.Empty(t, signal.Target)
}

func TestRoutingDoesNotMutateRoom(t *testing.T) {
	registry := NewRegistry()
	router := NewRouter(registry)
	room := pairedRoom(t, registry)

	_, err := router.RouteOffer(room.ID, room.Host, json.RawMessage(`{}`))
	require.NoError(t, err)

	after, exists := registry.GetRoom(room.ID)
	require.True(t, exists)
	assert.Equal(t, room, after)
}
