// Package boardapi provides the request and response bodies of the board endpoints.
package boardapi

import (
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/grid"
)

// ActionRequest represents a request to edit a board.
type ActionRequest struct {
	Action  string  `json:"action" binding:"required"`
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Density float64 `json:"density"`
}

// CreateBoardResponse carries a new board and the token that allows editing it.
type CreateBoardResponse struct {
	Board *dmn.Board `json:"board"`
	Token string     `json:"token"`
}

// ActionsResponse lists the structural actions in toolbar order.
type ActionsResponse struct {
	Actions []grid.Action `json:"actions"`
}
