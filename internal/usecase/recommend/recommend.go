package usecase_recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/reelmatch/core/internal/model"
	service_eligibility "github.com/humanbelnik/reelmatch/core/internal/service/eligibility"
	service_taste "github.com/humanbelnik/reelmatch/core/internal/service/taste"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnableToLoadSeeds = errors.New("unable to load seeds")
)

const (
	// maxSeeds bounds the taste evidence; featureSeedLimit bounds the
	// per-request feature fetch fan-out (one external call per seed).
	maxSeeds         = 25
	featureSeedLimit = 6

	// shortlistSize bounds the stage-2 rerank; maxResults the served list.
	shortlistSize = 60
	maxResults    = 100

	defaultPageSize = 20

	// Concurrency windows sized to third-party rate limits.
	fanOutLimit             = 6
	availabilityFanOutLimit = 8
)

//go:generate mockery --name=Catalog --output=./mocks/recommend/catalog --filename=catalog.go
type Catalog interface {
	Trending(ctx context.Context, kind model.MediaKind, language string) ([]model.Title, error)
	Discover(ctx context.Context, kind model.MediaKind, page int, certification string, language string) ([]model.Title, error)
	Similar(ctx context.Context, kind model.MediaKind, id int64, language string) ([]model.Title, error)
	Providers(ctx context.Context, kind model.MediaKind, id int64) ([]string, error)
}

//go:generate mockery --name=FeatureSource --output=./mocks/recommend/featuresource --filename=featuresource.go
type FeatureSource interface {
	Extract(ctx context.Context, kind model.MediaKind, id int64) model.FeatureSet
}

//go:generate mockery --name=SeedSource --output=./mocks/recommend/seedsource --filename=seedsource.go
type SeedSource interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Seed, error)
}

type Usecase struct {
	catalog    Catalog
	features   FeatureSource
	seeds      SeedSource
	normalizer *service_eligibility.Normalizer
	language   string
	logger     *slog.Logger
	now        func() time.Time
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithClock overrides time.Now, used by tests pinning the recency ladder.
func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	catalog Catalog,
	features FeatureSource,
	seeds SeedSource,
	normalizer *service_eligibility.Normalizer,
	language string,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		catalog:    catalog,
		features:   features,
		seeds:      seeds,
		normalizer: normalizer,
		language:   language,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Params is the per-request ranking context: whose taste, whose constraints,
// which slice of the result.
type Params struct {
	// UserID drives seeds and the taste model; nil for seedless (group) runs.
	UserID *uuid.UUID

	Profile model.EligibilityProfile
	Genres  model.GenrePrefs

	Page     int
	PageSize int

	// IncludeUnknownAvailability decides candidates whose availability could
	// not be fetched. Caller-supplied, never hardcoded.
	IncludeUnknownAvailability bool
}

// Recommend runs the full ranking pipeline: taste model, candidate pool,
// two-stage scoring, eligibility filtering, paging. Upstream failures degrade
// the affected contribution instead of failing the request.
func (u *Usecase) Recommend(ctx context.Context, p Params) ([]model.RankedTitle, error) {
	if p.Page < 1 {
		return nil, fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}

	seeds, err := u.loadSeeds(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	featureSeeds := topSeeds(seeds, featureSeedLimit)

	tasteModel := u.buildTasteModel(ctx, featureSeeds)

	certification := service_eligibility.Ceiling(p.Profile)
	candidates := u.aggregate(ctx, certification, featureSeeds)
	if len(candidates) == 0 && certification != "" {
		// The provider's certification coverage is unreliable; an empty
		// filtered pool falls back to the unfiltered one.
		u.logger.Info("certification filter emptied the pool, refetching without it",
			slog.String("certification", certification))
		candidates = u.aggregate(ctx, "", featureSeeds)
	}

	ranked := u.rank(ctx, candidates, p.Genres, tasteModel)

	if p.Profile.HasServiceConstraint() {
		ranked = u.filterByAvailability(ctx, ranked, p.Profile, p.IncludeUnknownAvailability)
	}

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return pageSlice(ranked, p.Page, p.PageSize), nil
}

func (u *Usecase) loadSeeds(ctx context.Context, userID *uuid.UUID) ([]model.Seed, error) {
	if userID == nil {
		return nil, nil
	}
	seeds, err := u.seeds.List(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("%w : %w", ErrUnableToLoadSeeds, err)
	}
	return topSeeds(seeds, maxSeeds), nil
}

func (u *Usecase) buildTasteModel(ctx context.Context, seeds []model.Seed) model.TasteModel {
	if len(seeds) == 0 {
		return model.TasteModel{}
	}

	sets := make([]model.FeatureSet, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			sets[i] = u.features.Extract(gctx, seed.Kind, seed.TitleID)
			return nil
		})
	}
	_ = g.Wait()

	return service_taste.Build(sets)
}

// rank runs both scoring stages. Stage 2 only pays the per-candidate feature
// fetch for the stage-1 shortlist.
func (u *Usecase) rank(ctx context.Context, candidates []model.Title, prefs model.GenrePrefs, tasteModel model.TasteModel) []model.RankedTitle {
	nowYear := u.now().Year()

	scored := make([]model.RankedTitle, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, model.RankedTitle{
			Title: c,
			Score: Stage1Score(c, prefs, nowYear),
		})
	}
	sortByScore(scored)

	if len(scored) > shortlistSize {
		scored = scored[:shortlistSize]
	}

	if !tasteModel.Empty() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(fanOutLimit)
		for i := range scored {
			i := i
			g.Go(func() error {
				fs := u.features.Extract(gctx, scored[i].Kind, scored[i].ID)
				scored[i].Score += TasteScore(fs, tasteModel)
				return nil
			})
		}
		_ = g.Wait()
		sortByScore(scored)
	}

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}

func (u *Usecase) filterByAvailability(ctx context.Context, ranked []model.RankedTitle, profile model.EligibilityProfile, includeUnknown bool) []model.RankedTitle {
	availability := make([]model.Availability, len(ranked))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(availabilityFanOutLimit)
	for i := range ranked {
		i := i
		g.Go(func() error {
			names, err := u.catalog.Providers(gctx, ranked[i].Kind, ranked[i].ID)
			if err != nil || names == nil {
				availability[i] = model.AvailabilityUnknown
				return nil
			}
			if u.normalizer.Matches(profile.Services, names) {
				availability[i] = model.AvailabilityEligible
			} else {
				availability[i] = model.AvailabilityIneligible
			}
			return nil
		})
	}
	_ = g.Wait()

	filtered := ranked[:0]
	for i, rt := range ranked {
		switch availability[i] {
		case model.AvailabilityEligible:
			filtered = append(filtered, rt)
		case model.AvailabilityUnknown:
			if includeUnknown {
				filtered = append(filtered, rt)
			}
		}
	}
	return filtered
}

// sortByScore is deterministic: equal scores break on (kind, id).
func sortByScore(ranked []model.RankedTitle) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Kind != ranked[j].Kind {
			return ranked[i].Kind < ranked[j].Kind
		}
		return ranked[i].ID < ranked[j].ID
	})
}

func pageSlice(ranked []model.RankedTitle, page, pageSize int) []model.RankedTitle {
	start := (page - 1) * pageSize
	if start >= len(ranked) {
		return []model.RankedTitle{}
	}
	end := start + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end]
}
