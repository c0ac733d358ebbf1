package http_match

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/reelmatch/core/internal/delivery/http/common"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
	usecase_match "github.com/humanbelnik/reelmatch/core/internal/usecase/match"
)

type Controller struct {
	usecase *usecase_match.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_match.Usecase, opts ...ControllerOption) *Controller {
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
	router.GET("/groups/:code/matches", c.matches)
	router.POST("/groups/:code/members/:member_id/acks", c.ack)
}

type MatchDTO struct {
	TitleID   int64  `json:"title_id"`
	MediaKind string `json:"media_kind"`
	LikeCount int    `json:"like_count"`
}

type MatchesResponseDTO struct {
	Size    int        `json:"size"`
	Need    int        `json:"need"`
	Matches []MatchDTO `json:"matches"`
}

// matches is the poll target: clients re-check every few seconds, so the
// whole result is recomputed from tallies on each read.
func (c *Controller) matches(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	var (
		result model.MatchResult
		err    error
	)
	if raw := ctx.Query("member_id"); raw != "" {
		memberID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed member id"})
			return
		}
		result, err = c.usecase.UnackedMatches(ctx, code, memberID)
	} else {
		result, err = c.usecase.Matches(ctx, code)
	}
	if err != nil {
		if errors.Is(err, usecase_match.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
			return
		}
		c.logger.Error("failed to compute matches", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	dtos := make([]MatchDTO, 0, len(result.Matches))
	for _, m := range result.Matches {
		dtos = append(dtos, MatchDTO{
			TitleID:   m.TitleID,
			MediaKind: string(m.Kind),
			LikeCount: m.LikeCount,
		})
	}

	ctx.JSON(http.StatusOK, MatchesResponseDTO{
		Size:    result.Size,
		Need:    result.Need,
		Matches: dtos,
	})
}

type AckRequestDTO struct {
	TitleID   int64  `json:"title_id" binding:"required"`
	MediaKind string `json:"media_kind" binding:"required"`
}

func (c *Controller) ack(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	memberID, err := uuid.Parse(ctx.Param("member_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed member id"})
		return
	}

	var req AckRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body: " + err.Error()})
		return
	}

	err = c.usecase.Ack(ctx, code, memberID, req.TitleID, model.MediaKind(req.MediaKind))
	if err != nil {
		switch {
		case errors.Is(err, usecase_match.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		case errors.Is(err, usecase_group.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		default:
			c.logger.Error("failed to ack match", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.Status(http.StatusCreated)
}
