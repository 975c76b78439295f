package main

import "errors"

// Join and routing failures form a closed set. The message text is what goes
// out on the wire inside the flat error event; the dispatcher branches on the
// kind, never on the text.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomNotJoinable = errors.New("game already in progress")
	ErrRoomFull        = errors.New("room is full")
)
