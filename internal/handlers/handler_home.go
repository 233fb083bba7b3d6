package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homeMessage is the liveness text served at the root path.
const homeMessage = "Loan service is running"

// getHome godoc
// @Summary Show the status of server.
// @Description Liveness check. Does not verify the database connection.
// @Tags root
// @Produce plain
// @Success 200 {string} string "Loan service is running"
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.String(http.StatusOK, homeMessage)
}
