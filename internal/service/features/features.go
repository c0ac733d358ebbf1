package service_features

import (
	"context"
	"log/slog"

	"github.com/humanbelnik/reelmatch/core/internal/model"
)

const maxBilledCast = 5

// Jobs marking the principal creative lead, per media kind.
var leadJobs = map[model.MediaKind]map[string]struct{}{
	model.KindMovie:  {"Director": {}},
	model.KindSeries: {"Creator": {}, "Head Writer": {}},
}

type Catalog interface {
	Details(ctx context.Context, kind model.MediaKind, id int64, language string) (model.TitleDetails, error)
}

// Extractor turns a title into its taste-signal ids. Fetch failures are
// swallowed: a missing FeatureSet degrades ranking, it never fails it.
type Extractor struct {
	catalog      Catalog
	language     string
	fallbackLang string
	logger       *slog.Logger
}

type ExtractorOption func(*Extractor)

func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

func New(catalog Catalog, language, fallbackLang string, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		catalog:      catalog,
		language:     language,
		fallbackLang: fallbackLang,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract fetches keyword and credit ids for one title. When both lists come
// back empty in the preferred locale it retries once in the fallback locale:
// a locale gap, not an error.
func (e *Extractor) Extract(ctx context.Context, kind model.MediaKind, id int64) model.FeatureSet {
	details, err := e.catalog.Details(ctx, kind, id, e.language)
	if err != nil {
		e.logger.Warn("feature fetch failed",
			slog.String("kind", string(kind)),
			slog.Int64("title_id", id),
			slog.String("error", err.Error()))
		return model.FeatureSet{}
	}

	fs := FromDetails(details)
	if !fs.Empty() || e.fallbackLang == "" || e.fallbackLang == e.language {
		return fs
	}

	details, err = e.catalog.Details(ctx, kind, id, e.fallbackLang)
	if err != nil {
		return model.FeatureSet{}
	}
	return FromDetails(details)
}

// FromDetails picks the taste signals out of fetched metadata: every keyword,
// the top billed cast, and the kind-dependent creative lead from the crew.
func FromDetails(details model.TitleDetails) model.FeatureSet {
	fs := model.FeatureSet{
		KeywordIDs: details.KeywordIDs,
	}

	seen := make(map[int64]struct{})
	for _, c := range details.Cast {
		if c.Order >= maxBilledCast {
			continue
		}
		if _, ok := seen[c.PersonID]; ok {
			continue
		}
		seen[c.PersonID] = struct{}{}
		fs.PersonIDs = append(fs.PersonIDs, c.PersonID)
	}

	leads := leadJobs[details.Kind]
	for _, c := range details.Crew {
		if _, ok := leads[c.Job]; !ok {
			continue
		}
		if _, ok := seen[c.PersonID]; ok {
			continue
		}
		seen[c.PersonID] = struct{}{}
		fs.PersonIDs = append(fs.PersonIDs, c.PersonID)
	}

	return fs
}
