package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

type HTTPHandler struct {
	Hub      *Hub
	Registry *Registry
}

func NewHTTPServer(hub *Hub, registry *Registry, config *Config) http.Handler {
	httpHandler := HTTPHandler{hub, registry}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(middleware.Heartbeat("/"))

	r.Get("/ws", httpHandler.websocket())
	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.Limit(30, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
		r.Get("/health", httpHandler.getHealth())
		r.Get("/rooms", httpHandler.getAvailableRooms())
	})
	return r
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		client := NewClient(conn)
		h.Hub.Register(client)
		go client.WritePump()
		for {
			msg, err := wsutil.ReadClientText(conn)
			if err != nil {
				h.Hub.Disconnect(client)
				break
			}
			h.Hub.HandleMessage(client, msg)
		}
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	TimeStamp   string `json:"timeStamp"`
	Rooms       int    `json:"rooms"`
	Connections int    `json:"connections"`
}

func (h HTTPHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:      "ok",
			TimeStamp:   time.Now().UTC().Format(time.RFC3339),
			Rooms:       h.Registry.RoomCount(),
			Connections: h.Hub.ClientCount(),
		})
	}
}

func (h HTTPHandler) getAvailableRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			Rooms []AvailableRoom `json:"rooms"`
		}{h.Registry.AvailableRooms()})
	}
}
