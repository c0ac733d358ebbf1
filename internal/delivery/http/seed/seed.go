package http_seed

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/reelmatch/core/internal/delivery/http/common"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	usecase_seed "github.com/humanbelnik/reelmatch/core/internal/usecase/seed"
)

type Controller struct {
	usecase *usecase_seed.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_seed.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	seeds := router.Group("/users/:user_id/seeds")
	{
		seeds.POST("", c.add)
		seeds.DELETE("/:kind/:title_id", c.remove)
	}
}

type AddSeedRequestDTO struct {
	TitleID   int64  `json:"title_id" binding:"required"`
	MediaKind string `json:"media_kind" binding:"required"`
	Source    string `json:"source" binding:"required" example:"favorite"`
}

func (c *Controller) add(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed user id"})
		return
	}

	var req AddSeedRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body: " + err.Error()})
		return
	}

	err = c.usecase.Add(ctx, model.Seed{
		UserID:  userID,
		TitleID: req.TitleID,
		Kind:    model.MediaKind(req.MediaKind),
		Source:  model.SeedSource(req.Source),
	})
	if err != nil {
		if errors.Is(err, usecase_seed.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
			return
		}
		c.logger.Error("failed to add seed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.Status(http.StatusCreated)
}

func (c *Controller) remove(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed user id"})
		return
	}

	titleID, err := strconv.ParseInt(ctx.Param("title_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed title id"})
		return
	}

	err = c.usecase.Remove(ctx, model.Seed{
		UserID:  userID,
		TitleID: titleID,
		Kind:    model.MediaKind(ctx.Param("kind")),
		Source:  model.SeedSource(ctx.Query("source")),
	})
	if err != nil {
		if errors.Is(err, usecase_seed.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
			return
		}
		c.logger.Error("failed to remove seed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
