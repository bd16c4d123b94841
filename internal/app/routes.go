package app

import (
	"github.com/vancomm/minesweeper-board/internal/handlers"
)

func (a *App) loadRoutes() {
	board := handlers.NewBoardHandler(a.log, a.store, a.ws, a.config.Board, a.config.MaxCells)

	a.router.HandleFunc("GET /status", board.Status)

	a.router.HandleFunc("POST /board", board.NewBoard)
	a.router.HandleFunc("GET /board/{id}", board.Fetch)
	a.router.HandleFunc("DELETE /board/{id}", board.Delete)
	a.router.HandleFunc("POST /board/{id}/reveal", board.Reveal)
	a.router.HandleFunc("POST /board/{id}/flag", board.Flag)
	a.router.HandleFunc("POST /board/{id}/activate", board.Activate)
	a.router.HandleFunc("POST /board/{id}/reset", board.Reset)
	a.router.HandleFunc("GET /board/{id}/connect", board.ConnectWS)
}
