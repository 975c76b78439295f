package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientMessage(t *testing.T) {
	message, err := ParseClientMessage([]byte(`{"type":"join-room","roomId":"ABC123"}`))
	require.NoError(t, err)
	join, ok := message.(JoinRoomMessage)
	require.True(t, ok)
	assert.Equal(t, "ABC123", join.RoomID)

	message, err = ParseClientMessage([]byte(`{"type":"offer","roomId":"ABC123","offer":{"sdp":"x"}}`))
	require.NoError(t, err)
	offer, ok := message.(OfferMessage)
	require.True(t, ok)
	assert.Equal(t, "ABC123", offer.RoomID)
	assert.JSONEq(t, `{"sdp":"x"}`, string(offer.Offer))

	message, err = ParseClientMessage([]byte(`{"type":"request-game-init","roomId":"ABC123","requester":"g","retry":true}`))
	require.NoError(t, err)
	request, ok := message.(RequestGameInitMessage)
	require.True(t, ok)
	assert.True(t, request.Retry)
	assert.Equal(t, "g", request.Requester)

	message, err = ParseClientMessage([]byte(`{"type":"create-room"}`))
	require.NoError(t, err)
	_, ok = message.(CreateRoomMessage)
	assert.True(t, ok)
}

func TestParseClientMessageUndefinedType(t *testing.T) {
	_, err := ParseClientMessage([]byte(`{"type":"teleport"}`))
	assert.True(t, errors.Is(err, ErrUndefinedType))
}
