package http_recommend

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/reelmatch/core/internal/delivery/http/common"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	service_eligibility "github.com/humanbelnik/reelmatch/core/internal/service/eligibility"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
	usecase_recommend "github.com/humanbelnik/reelmatch/core/internal/usecase/recommend"
)

type Controller struct {
	usecase    *usecase_recommend.Usecase
	groups     *usecase_group.Usecase
	normalizer *service_eligibility.Normalizer
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	usecase *usecase_recommend.Usecase,
	groups *usecase_group.Usecase,
	normalizer *service_eligibility.Normalizer,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		usecase:    usecase,
		groups:     groups,
		normalizer: normalizer,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:user_id/recommendations", c.forUser)
	router.GET("/groups/:code/recommendations", c.forGroup)
}

type RankedTitleDTO struct {
	ID         int64   `json:"id"`
	MediaKind  string  `json:"media_kind"`
	Title      string  `json:"title"`
	Year       int     `json:"year,omitempty"`
	PosterPath string  `json:"poster_path,omitempty"`
	Rank       int     `json:"rank"`
	Score      float64 `json:"score"`
}

func (c *Controller) forUser(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed user id"})
		return
	}

	params, ok := c.pagingParams(ctx)
	if !ok {
		return
	}
	params.UserID = &userID
	params.Genres = genrePrefs(ctx.Query("liked_genres"), ctx.Query("disliked_genres"))

	if services := splitList(ctx.Query("services")); len(services) > 0 {
		eligible, _ := c.normalizer.EligibleSet([][]string{services})
		params.Profile.Services = eligible
	}

	c.respond(ctx, params)
}

func (c *Controller) forGroup(ctx *gin.Context) {
	code := model.GroupCode(ctx.Param("code"))

	members, err := c.groups.Members(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_group.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
			return
		}
		c.logger.Error("failed to load members", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	params, ok := c.pagingParams(ctx)
	if !ok {
		return
	}
	params.Profile = service_eligibility.ProfileForMembers(members, c.normalizer, time.Now())
	params.Genres = memberGenrePrefs(members)

	c.respond(ctx, params)
}

func (c *Controller) respond(ctx *gin.Context, params usecase_recommend.Params) {
	ranked, err := c.usecase.Recommend(ctx, params)
	if err != nil {
		if errors.Is(err, usecase_recommend.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
			return
		}
		c.logger.Error("failed to rank", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	dtos := make([]RankedTitleDTO, 0, len(ranked))
	for _, rt := range ranked {
		dtos = append(dtos, RankedTitleDTO{
			ID:         rt.ID,
			MediaKind:  string(rt.Kind),
			Title:      rt.Name,
			Year:       rt.Year,
			PosterPath: rt.PosterPath,
			Rank:       rt.Rank,
			Score:      rt.Score,
		})
	}

	ctx.JSON(http.StatusOK, dtos)
}

func (c *Controller) pagingParams(ctx *gin.Context) (usecase_recommend.Params, bool) {
	params := usecase_recommend.Params{
		Page:                       1,
		IncludeUnknownAvailability: true,
	}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed page"})
			return params, false
		}
		params.Page = page
	}
	if raw := ctx.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed page_size"})
			return params, false
		}
		params.PageSize = size
	}
	if raw := ctx.Query("include_unknown"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "malformed include_unknown"})
			return params, false
		}
		params.IncludeUnknownAvailability = include
	}

	return params, true
}

func genrePrefs(liked, disliked string) model.GenrePrefs {
	return model.GenrePrefs{
		Liked:    genreSet(liked),
		Disliked: genreSet(disliked),
	}
}

func memberGenrePrefs(members []model.Member) model.GenrePrefs {
	prefs := model.GenrePrefs{
		Liked:    make(map[int64]struct{}),
		Disliked: make(map[int64]struct{}),
	}
	for _, m := range members {
		for _, g := range m.LikedGenres {
			prefs.Liked[g] = struct{}{}
		}
		for _, g := range m.DislikedGenres {
			prefs.Disliked[g] = struct{}{}
		}
	}
	return prefs
}

func genreSet(raw string) map[int64]struct{} {
	set := make(map[int64]struct{})
	for _, part := range splitList(raw) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
