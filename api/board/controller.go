// Package boardapi handles board creation, editing and change streaming.
package boardapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nhanhuynh123/pathgrid/api/identity"
	"github.com/nhanhuynh123/pathgrid/config"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/grid"
	"github.com/nhanhuynh123/pathgrid/maze"
	"github.com/nhanhuynh123/pathgrid/service"
	"github.com/nhanhuynh123/pathgrid/service/i"
)

// BoardController manages board operations.
type BoardController struct {
	boards     i.BoardManager
	subscriber i.Subscriber
	logger     *log.Logger
}

// NewBoardController initializes a BoardController.
func NewBoardController(bm i.BoardManager, sub i.Subscriber, logger *log.Logger) (*BoardController, error) {
	if bm == nil || sub == nil {
		return nil, errors.New("board manager and subscriber are required")
	}
	return &BoardController{
		boards:     bm,
		subscriber: sub,
		logger:     logger,
	}, nil
}

// RegisterPublic registers public routes.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/actions", bc.actions)

	boards := route.Group("/boards")
	{
		boards.POST("", bc.create)
		boards.GET("/:ID", bc.get)
		boards.GET("/:ID/stream", bc.stream)
	}
}

// RegisterProtected registers protected routes.
func (bc *BoardController) RegisterProtected(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	boards.Use(identity.RequireBoard("ID"))
	{
		boards.POST("/:ID/actions", bc.apply)
		boards.DELETE("/:ID", bc.delete)
	}
}

// actions lists the structural actions.
func (bc *BoardController) actions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &ActionsResponse{Actions: grid.Actions()})
}

// create handles board creation requests.
func (bc *BoardController) create(ctx *gin.Context) {
	board, token, err := bc.boards.Create(ctx.Request.Context())
	if err != nil {
		bc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreateBoardResponse{Board: board, Token: token})
}

// get returns the current state of a board.
func (bc *BoardController) get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	board, err := bc.boards.Get(ctx.Request.Context(), id)
	if err != nil {
		bc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, board)
}

// apply runs one action against a board.
func (bc *BoardController) apply(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var request ActionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := grid.ParseAction(request.Action)
	if err != nil {
		bc.writeError(ctx, err)
		return
	}

	board, err := bc.boards.Apply(ctx.Request.Context(), id, i.ActionRequest{
		Action:  action,
		Row:     request.Row,
		Col:     request.Col,
		Rows:    request.Rows,
		Cols:    request.Cols,
		Density: request.Density,
	})
	if err != nil {
		bc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, board)
}

// delete removes a board.
func (bc *BoardController) delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := bc.boards.Delete(ctx.Request.Context(), id); err != nil {
		bc.writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseID reads the board id path parameter, answering 400 when it is malformed.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service errors to HTTP statuses.
func (bc *BoardController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrBoardNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, grid.ErrUnknownAction),
		errors.Is(err, service.ErrInvalidDimensions),
		errors.Is(err, service.ErrInvalidCell),
		errors.Is(err, maze.ErrInvalidDensity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		bc.logger.Printf("%s[ERROR]%s %s %s: %s", config.LogErrorColor, config.LogColorReset, ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
