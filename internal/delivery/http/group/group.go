package http_group

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/reelmatch/core/internal/delivery/http/common"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
)

type Controller struct {
	usecase *usecase_group.Usecase
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_group.Usecase, opts ...ControllerOption) *Controller {
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
	groups := router.Group("/groups")
	{
		groups.POST("", c.create)
		groups.DELETE("/:code", c.delete)
		groups.POST("/:code/members", c.join)
		groups.GET("/:code/members", c.members)
	}
}

type CreateResponseDTO struct {
	GroupCode string `json:"group_code"`
}

func (c *Controller) create(ctx *gin.Context) {
	code, err := c.usecase.Create(ctx)
	if err != nil {
		c.logger.Error("failed to create group", slog.String("error", err.Error()))
		if errors.Is(err, usecase_group.ErrGroupsUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, http_common.ErrorResponse{Message: "unavailable"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponseDTO{
		GroupCode: string(code),
	})
}

type JoinRequestDTO struct {
	Name           string   `json:"name" binding:"required"`
	BirthDate      string   `json:"birth_date"` // YYYY-MM-DD, optional
	Services       []string `json:"services"`
	LikedGenres    []int64  `json:"liked_genres"`
	DislikedGenres []int64  `json:"disliked_genres"`
}

type JoinResponseDTO struct {
	MemberID string `json:"member_id"`
}

func (c *Controller) join(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed body: " + err.Error()})
		return
	}

	member := model.Member{
		Name:           req.Name,
		Services:       req.Services,
		LikedGenres:    req.LikedGenres,
		DislikedGenres: req.DislikedGenres,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed birth_date, want YYYY-MM-DD"})
			return
		}
		member.BirthDate = &birthDate
	}

	memberID, err := c.usecase.Join(ctx, code, member)
	if err != nil {
		c.logger.Error("failed to join group", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_group.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		case errors.Is(err, usecase_group.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, JoinResponseDTO{
		MemberID: memberID.String(),
	})
}

type MemberDTO struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

func (c *Controller) members(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	members, err := c.usecase.Members(ctx, code)
	if err != nil {
		c.logger.Error("failed to list members", slog.String("error", err.Error()))
		if errors.Is(err, usecase_group.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	dtos := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, MemberDTO{
			ID:       m.ID.String(),
			Name:     m.Name,
			Services: m.Services,
		})
	}

	ctx.JSON(http.StatusOK, dtos)
}

func (c *Controller) delete(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	if err := c.usecase.Delete(ctx, code); err != nil {
		c.logger.Error("failed to delete group", slog.String("error", err.Error()))
		if errors.Is(err, usecase_group.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
