package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type ConnLogger struct {
	zerolog zerolog.Logger
}

func GetConnLogger(id ConnID) ConnLogger {
	return ConnLogger{log.With().Str("conn-id", string(id)).Logger()}
}

func (l ConnLogger) Connected() {
	l.zerolog.Info().Msg("Client connected")
}

func (l ConnLogger) Disconnected() {
	l.zerolog.Info().Msg("Client disconnected")
}

func (l ConnLogger) CreatedRoom(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Created room")
}

func (l ConnLogger) JoinedRoom(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Joined room")
}

func (l ConnLogger) LeftRoom(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Left room")
}

func (l ConnLogger) SendingOffer(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Sending offer")
}

func (l ConnLogger) SendingAnswer(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Sending answer")
}

func (l ConnLogger) GameEnded(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Game ended")
}

func (l ConnLogger) RoomClosed(roomID string) {
	l.zerolog.Info().Str("room-id", roomID).Msg("Room closed due to disconnect")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogCleanedInactiveRooms(count int) {
	log.Info().Int("count", count).Msg("Cleaned up inactive rooms")
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}

func LogServerError(err error) {
	log.Error().Err(err).Msg("Server error")
}

func LogShuttingDown() {
	log.Info().Msg("Shutting down")
}
