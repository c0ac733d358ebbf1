package http_voting

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
	usecase_vote "github.com/humanbelnik/reelmatch/core/internal/usecase/vote"
)

// MatchNotifier pushes best-effort match events to subscribed group members.
// The polling endpoints stay authoritative.
type MatchNotifier interface {
	NotifyMatch(code model.GroupCode, match model.Match, tally model.Tally)
}

type Controller struct {
	usecase  *usecase_vote.Usecase
	notifier MatchNotifier
	logger   *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_vote.Usecase, notifier MatchNotifier, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase:  usecase,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/groups/:code/members/:member_id/votes", c.vote)
}

type VoteRequestDTO struct {
	TitleID   int64  `json:"title_id" binding:"required"`
	MediaKind string `json:"media_kind" binding:"required"`
	Decision  string `json:"decision" binding:"required" example:"LIKE"`
}

type TallyResponseDTO struct {
	Like         int `json:"like"`
	Dislike      int `json:"dislike"`
	Skip         int `json:"skip"`
	TotalMembers int `json:"total_members"`
}

func (c *Controller) vote(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	memberID, err := uuid.Parse(ctx.Param("member_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed member id"})
		return
	}

	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body: " + err.Error()})
		return
	}

	tally, err := c.usecase.Submit(ctx, code, memberID, req.TitleID, model.MediaKind(req.MediaKind), model.Decision(req.Decision))
	if err != nil {
		switch {
		case errors.Is(err, usecase_vote.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		case errors.Is(err, usecase_group.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		default:
			c.logger.Error("failed to submit vote", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	if c.notifier != nil && usecase_match.TallyMatched(tally) {
		c.notifier.NotifyMatch(code, model.Match{
			TitleID:   req.TitleID,
			Kind:      model.MediaKind(req.MediaKind),
			LikeCount: tally.Like,
		}, tally)
	}

	ctx.JSON(http.StatusOK, TallyResponseDTO{
		Like:         tally.Like,
		Dislike:      tally.Dislike,
		Skip:         tally.Skip,
		TotalMembers: tally.TotalMembers,
	})
}
