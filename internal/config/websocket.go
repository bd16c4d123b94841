package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WebSocket holds the upgrader and write deadline used for live boards.
type WebSocket struct {
	Upgrader     websocket.Upgrader
	WriteTimeout time.Duration
}

func NewWebSocket(log *logrus.Logger) *WebSocket {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			log.Debug("\tws origin: ", r.Header.Get("Origin"))
			return true
		},
	}

	return &WebSocket{
		Upgrader:     upgrader,
		WriteTimeout: 10 * time.Second,
	}
}
