package ws_match

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/reelmatch/core/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy belongs to the reverse proxy
	},
}

type Controller struct {
	hub    *Hub
	logger *slog.Logger
}

func NewController(hub *Hub) *Controller {
	return &Controller{
		hub:    hub,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/groups/:code/matches", c.subscribe)
}

func (c *Controller) subscribe(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))
	if code == model.EmptyGroupCode {
		ctx.Status(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("ws upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		Conn:      conn,
		Send:      make(chan []byte, 8),
		GroupCode: code,
	}
	c.hub.RegisterClient(client)

	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}
