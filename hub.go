package main

import "sync"

// Hub is the event dispatcher between the transport and the core. It owns
// the connection table and each connection's current room binding (the group
// membership used for whole-room relays) and converts every registry or
// router failure into a sender-directed error frame.
type Hub struct {
	registry *Registry
	router   *Router
	clients  map[ConnID]*Client
	lock     sync.Mutex
}

func NewHub(registry *Registry, router *Router) *Hub {
	return &Hub{
		registry: registry,
		router:   router,
		clients:  make(map[ConnID]*Client),
	}
}

func (h *Hub) Register(client *Client) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.clients[client.ID] = client
	GetConnLogger(client.ID).Connected()
}

func (h *Hub) ClientCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.clients)
}

// HandleMessage dispatches one decoded transport event. Frames with an
// unknown type are ignored.
func (h *Hub) HandleMessage(client *Client, data []byte) {
	message, err := ParseClientMessage(data)
	if err != nil {
		return
	}
	h.lock.Lock()
	defer h.lock.Unlock()
	switch m := message.(type) {
	case CreateRoomMessage:
		h.handleCreateRoom(client)
	case GetRoomsMessage:
		client.enqueue(EncodeRoomList(h.registry.AvailableRooms()))
	case JoinRoomMessage:
		h.handleJoinRoom(client, m)
	case OfferMessage:
		h.handleOffer(client, m)
	case AnswerMessage:
		h.handleAnswer(client, m)
	case IceCandidateMessage:
		h.deliver(h.router.RouteIceCandidate(m.RoomID, client.ID, m.Candidate))
	case GameInitMessage:
		h.broadcastRoom(m.RoomID, EncodeGameInit(m.State))
	case RequestGameInitMessage:
		h.handleRequestGameInit(client, m)
	case GameEndMessage:
		h.handleGameEnd(client, m)
	case LeaveRoomMessage:
		h.handleLeaveRoom(client, m)
	}
}

// Disconnect tears down a dropped connection: the surviving occupant (if
// any) is notified, then the room is removed unconditionally.
func (h *Hub) Disconnect(client *Client) {
	h.lock.Lock()
	defer h.lock.Unlock()
	delete(h.clients, client.ID)
	logger := GetConnLogger(client.ID)
	logger.Disconnected()
	if client.roomID == "" {
		close(client.send)
		return
	}
	if room, exists := h.registry.GetRoom(client.roomID); exists {
		h.notify(room.Counterpart(client.ID), EncodeOpponentDisconnected())
		h.registry.RemoveRoom(room.ID)
		logger.RoomClosed(room.ID)
	}
	close(client.send)
}

func (h *Hub) handleCreateRoom(client *Client) {
	room := h.registry.CreateRoom(client.ID)
	client.roomID = room.ID
	client.enqueue(EncodeRoomCreated(room.ID))
	GetConnLogger(client.ID).CreatedRoom(room.ID)
}

func (h *Hub) handleJoinRoom(client *Client, m JoinRoomMessage) {
	room, err := h.registry.JoinRoom(m.RoomID, client.ID)
	if err != nil {
		client.enqueue(EncodeError(err.Error()))
		return
	}
	client.roomID = room.ID
	client.enqueue(EncodeRoomJoined(room.ID))
	h.notify(room.Host, EncodeGuestJoined(client.ID))
	GetConnLogger(client.ID).JoinedRoom(room.ID)
}

func (h *Hub) handleOffer(client *Client, m OfferMessage) {
	signal, err := h.router.RouteOffer(m.RoomID, client.ID, m.Offer)
	if err != nil {
		client.enqueue(EncodeError(err.Error()))
		return
	}
	GetConnLogger(client.ID).SendingOffer(m.RoomID)
	h.deliver(signal)
}

func (h *Hub) handleAnswer(client *Client, m AnswerMessage) {
	signal, err := h.router.RouteAnswer(m.RoomID, client.ID, m.Answer)
	if err != nil {
		client.enqueue(EncodeError(err.Error()))
		return
	}
	GetConnLogger(client.ID).SendingAnswer(m.RoomID)
	h.deliver(signal)
}

func (h *Hub) handleRequestGameInit(client *Client, m RequestGameInitMessage) {
	room, exists := h.registry.GetRoom(m.RoomID)
	if !exists {
		return
	}
	h.notify(room.Host, EncodeRequestGameInit(client.ID, m.Requester, m.Retry))
}

func (h *Hub) handleGameEnd(client *Client, m GameEndMessage) {
	room, exists := h.registry.GetRoom(m.RoomID)
	if !exists {
		return
	}
	h.broadcastRoom(room.ID, EncodeGameEnded())
	h.registry.RemoveRoom(room.ID)
	GetConnLogger(client.ID).GameEnded(room.ID)
}

func (h *Hub) handleLeaveRoom(client *Client, m LeaveRoomMessage) {
	room, exists := h.registry.GetRoom(m.RoomID)
	if !exists {
		return
	}
	h.notify(room.Counterpart(client.ID), EncodeOpponentLeft())
	h.registry.RemoveRoom(room.ID)
	client.roomID = ""
	GetConnLogger(client.ID).LeftRoom(room.ID)
}

// deliver sends a routed signal to its target, if there is one.
func (h *Hub) deliver(signal Signal) {
	if signal.Target == "" {
		return
	}
	h.notify(signal.Target, signal.Data)
}

func (h *Hub) notify(target ConnID, data []byte) {
	if target == "" {
		return
	}
	if client, connected := h.clients[target]; connected {
		client.enqueue(data)
	}
}

// broadcastRoom delivers a frame to every connection currently bound to the
// room, the sender included.
func (h *Hub) broadcastRoom(roomID string, data []byte) {
	if roomID == "" {
		return
	}
	for _, client := range h.clients {
		if client.roomID == roomID {
			client.enqueue(data)
		}
	}
}
