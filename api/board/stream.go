package boardapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nhanhuynh123/pathgrid/config"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/grid"
)

const (
	// actionSnapshot tags the first message of a stream, which carries the
	// board as it was when the client connected.
	actionSnapshot grid.Action = "snapshot"

	writeWait = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
}

// stream upgrades to a websocket and pushes every change of the board.
func (bc *BoardController) stream(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	streamCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()

	// Subscribe before reading the board so no change falls between the two.
	events, unsubscribe, err := bc.subscriber.Subscribe(streamCtx, id)
	if err != nil {
		bc.writeError(ctx, err)
		return
	}
	defer unsubscribe()

	board, err := bc.boards.Get(streamCtx, id)
	if err != nil {
		bc.writeError(ctx, err)
		return
	}

	ws, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		bc.logger.Printf("%s[ERROR]%s upgrading stream for board %s: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return
	}
	defer ws.Close()

	// The client never sends anything; reading only detects the close.
	go func() {
		defer cancel()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := send(ws, dmn.NewBoardChanged(board, actionSnapshot)); err != nil {
		return
	}

	for {
		select {
		case <-streamCtx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Version <= board.Version {
				continue
			}
			if err := send(ws, event); err != nil {
				return
			}
		}
	}
}

func send(ws *websocket.Conn, event dmn.BoardChanged) error {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	return ws.WriteJSON(event)
}
