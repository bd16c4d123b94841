package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
)

// FrameDTO answers one websocket frame.
type FrameDTO struct {
	*session.Result
	Error string `json:"error,omitempty"`
}

// ConnectWS streams draw requests for newline separated text commands.
// A bad command is reported back and the connection stays open.
func (h BoardHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer c.Close()

	log := h.log.WithField("session_id", sess.ID)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("abnormal ws break")
			}
			break
		}
		if mt != websocket.TextMessage {
			c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text frames only"))
			break
		}

		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)

		res, err := sess.Do(func(b *mines.Board) error {
			for _, command := range iterBySep(text, "\n") {
				if err := executeCommand(b, command); err != nil {
					return err
				}
			}
			return nil
		})

		frame := FrameDTO{Result: res}
		if err != nil {
			log.WithError(err).WithField("frame", text).Warn("unable to process command")
			frame.Error = err.Error()
		}
		h.logResult(res)

		c.SetWriteDeadline(time.Now().Add(h.ws.WriteTimeout))
		if err := c.WriteJSON(frame); err != nil {
			log.WithError(err).Error("unable to write json")
			break
		}
		log.WithFields(logrus.Fields{
			"status":  res.Status.String(),
			"updates": len(res.Updates),
		}).Debug("\t< frame")
	}
}
