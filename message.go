package main

import (
	"encoding/json"
	"errors"
)

// Client-to-server events. Offer/answer/candidate/state bodies are opaque to
// the server and relayed verbatim.

type CreateRoomMessage struct{}

type GetRoomsMessage struct{}

type JoinRoomMessage struct {
	RoomID string `json:"roomId"`
}

type OfferMessage struct {
	RoomID string          `json:"roomId"`
	Offer  json.RawMessage `json:"offer"`
}

type AnswerMessage struct {
	RoomID string          `json:"roomId"`
	Answer json.RawMessage `json:"answer"`
}

type IceCandidateMessage struct {
	RoomID    string          `json:"roomId"`
	Candidate json.RawMessage `json:"candidate"`
}

type GameInitMessage struct {
	RoomID string          `json:"roomId"`
	State  json.RawMessage `json:"state"`
}

type RequestGameInitMessage struct {
	RoomID    string `json:"roomId"`
	Requester string `json:"requester"`
	Retry     bool   `json:"retry"`
}

type GameEndMessage struct {
	RoomID string `json:"roomId"`
}

type LeaveRoomMessage struct {
	RoomID string `json:"roomId"`
}

var ErrUndefinedType = errors.New("incorrect type")

// Returns one of the client message structs above
func ParseClientMessage(data []byte) (any, error) {
	message := UnmarshalJSON[struct {
		Type string `json:"type"`
	}](data)
	var parsedMessage any
	switch message.Type {
	case "create-room":
		parsedMessage = CreateRoomMessage{}
	case "get-rooms":
		parsedMessage = GetRoomsMessage{}
	case "join-room":
		parsedMessage = UnmarshalJSON[JoinRoomMessage](data)
	case "offer":
		parsedMessage = UnmarshalJSON[OfferMessage](data)
	case "answer":
		parsedMessage = UnmarshalJSON[AnswerMessage](data)
	case "ice-candidate":
		parsedMessage = UnmarshalJSON[IceCandidateMessage](data)
	case "game-init":
		parsedMessage = UnmarshalJSON[GameInitMessage](data)
	case "request-game-init":
		parsedMessage = UnmarshalJSON[RequestGameInitMessage](data)
	case "game-end":
		parsedMessage = UnmarshalJSON[GameEndMessage](data)
	case "leave-room":
		parsedMessage = UnmarshalJSON[LeaveRoomMessage](data)
	default:
		return nil, ErrUndefinedType
	}
	return parsedMessage, nil
}

// Server-to-client events.

type roomCreatedMessage struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

type roomListMessage struct {
	Type  string          `json:"type"`
	Rooms []AvailableRoom `json:"rooms"`
}

type roomJoinedMessage struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
	IsHost bool   `json:"isHost"`
}

type guestJoinedMessage struct {
	Type    string `json:"type"`
	GuestID ConnID `json:"guestId"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type offerRelayMessage struct {
	Type  string          `json:"type"`
	Offer json.RawMessage `json:"offer"`
	From  ConnID          `json:"from"`
}

type answerRelayMessage struct {
	Type   string          `json:"type"`
	Answer json.RawMessage `json:"answer"`
	From   ConnID          `json:"from"`
}

type candidateRelayMessage struct {
	Type      string          `json:"type"`
	Candidate json.RawMessage `json:"candidate"`
	From      ConnID          `json:"from"`
}

type gameInitRelayMessage struct {
	Type  string          `json:"type"`
	State json.RawMessage `json:"state"`
}

type requestGameInitRelayMessage struct {
	Type      string `json:"type"`
	From      ConnID `json:"from"`
	Requester string `json:"requester"`
	Retry     bool   `json:"retry"`
}

type plainMessage struct {
	Type string `json:"type"`
}

func marshalMessage(message any) []byte {
	encoded, _ := json.Marshal(message)
	return encoded
}

func EncodeRoomCreated(roomID string) []byte {
	return marshalMessage(roomCreatedMessage{"room-created", roomID})
}

func EncodeRoomList(rooms []AvailableRoom) []byte {
	return marshalMessage(roomListMessage{"room-list", rooms})
}

func EncodeRoomJoined(roomID string) []byte {
	return marshalMessage(roomJoinedMessage{"room-joined", roomID, false})
}

func EncodeGuestJoined(guest ConnID) []byte {
	return marshalMessage(guestJoinedMessage{"guest-joined", guest})
}

func EncodeError(message string) []byte {
	return marshalMessage(errorMessage{"error", message})
}

func EncodeOffer(offer json.RawMessage, from ConnID) []byte {
	return marshalMessage(offerRelayMessage{"offer", offer, from})
}

func EncodeAnswer(answer json.RawMessage, from ConnID) []byte {
	return marshalMessage(answerRelayMessage{"answer", answer, from})
}

func EncodeIceCandidate(candidate json.RawMessage, from ConnID) []byte {
	return marshalMessage(candidateRelayMessage{"ice-candidate", candidate, from})
}

func EncodeGameInit(state json.RawMessage) []byte {
	return marshalMessage(gameInitRelayMessage{"game-init", state})
}

func EncodeRequestGameInit(from ConnID, requester string, retry bool) []byte {
	return marshalMessage(requestGameInitRelayMessage{"request-game-init", from, requester, retry})
}

func EncodeGameEnded() []byte {
	return marshalMessage(plainMessage{"game-ended"})
}

func EncodeOpponentLeft() []byte {
	return marshalMessage(plainMessage{"opponent-left"})
}

func EncodeOpponentDisconnected() []byte {
	return marshalMessage(plainMessage{"opponent-disconnected"})
}
