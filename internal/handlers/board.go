package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
)

type BoardHandler struct {
	log      *logrus.Logger
	store    *session.Store
	ws       *config.WebSocket
	defaults mines.Params
	maxCells int
}

func NewBoardHandler(
	log *logrus.Logger,
	store *session.Store,
	ws *config.WebSocket,
	defaults mines.Params,
	maxCells int,
) *BoardHandler {
	return &BoardHandler{
		log:      log,
		store:    store,
		ws:       ws,
		defaults: defaults,
		maxCells: maxCells,
	}
}

func (h BoardHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("\"ok\""))
}

func (h BoardHandler) NewBoard(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewBoardParams(r.URL.Query(), h.defaults, h.maxCells)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	sess, err := h.store.Create(params)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"params":     params.Seed(),
	}).Info("new board")

	sendStatusJSONOrLog(w, h.log, http.StatusCreated, sess.Views())
}

// lookup finds the session named by the {id} path value, answering 404
// itself when there is none.
func (h BoardHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.store.Get(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, h.log, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch session")
		return nil, false
	}
	return sess, true
}

func (h BoardHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.log, sess.Views())
}

func (h BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, h.log, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// move decodes row/col and applies fn to the resolved panel index.
func (h BoardHandler) move(fn func(b *mines.Board, index int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pos, err := ParsePosition(r.URL.Query())
		if err != nil {
			sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
			return
		}

		sess, ok := h.lookup(w, r)
		if !ok {
			return
		}

		res, err := sess.Do(func(b *mines.Board) error {
			return fn(b, b.Resolve(pos.Row, pos.Col))
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			h.log.WithError(err).WithField("session_id", sess.ID).Error("unable to apply move")
			return
		}

		h.logResult(res)
		sendJSONOrLog(w, h.log, res)
	}
}

func (h BoardHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.move(func(b *mines.Board, index int) error {
		b.RevealAt(index)
		return nil
	})(w, r)
}

func (h BoardHandler) Flag(w http.ResponseWriter, r *http.Request) {
	h.move(func(b *mines.Board, index int) error {
		b.ToggleFlagAt(index)
		return nil
	})(w, r)
}

func (h BoardHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.move(func(b *mines.Board, index int) error {
		_, err := b.Activate(index)
		return err
	})(w, r)
}

func (h BoardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}

	res, err := sess.Do(func(b *mines.Board) error {
		return b.Reset()
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).WithField("session_id", sess.ID).Error("unable to reset board")
		return
	}

	sendJSONOrLog(w, h.log, res)
}

func (h BoardHandler) logResult(res *session.Result) {
	if res.Status.Terminal() && res.EndedAt != nil && len(res.Updates) > 0 {
		h.log.WithFields(logrus.Fields{
			"session_id": res.SessionID,
			"status":     res.Status.String(),
			"revealed":   res.RevealedCount,
		}).Info("game over")
	}
}
