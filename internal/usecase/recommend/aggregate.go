package usecase_recommend

import (
	"context"
	"log/slog"

	"github.com/humanbelnik/reelmatch/core/internal/model"
	"golang.org/x/sync/errgroup"
)

// discoverPages is how deep the popular listings are paged per kind.
const discoverPages = 2

// aggregate unions the candidate sources into one deduplicated pool.
// Source order is a contract: trending and popular listings outrank per-seed
// similar titles, and the first occurrence of a (kind, id) keeps its metadata.
func (u *Usecase) aggregate(ctx context.Context, certification string, seeds []model.Seed) []model.Title {
	fetches := u.sourceFetches(certification, seeds)
	sources := make([][]model.Title, len(fetches))

	// Sources fetch in parallel but merge in declaration order, so the
	// first-wins contract survives the concurrency.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, fetch := range fetches {
		i, fetch := i, fetch
		g.Go(func() error {
			titles, err := fetch(gctx)
			if err != nil {
				// A dead source contributes nothing; the pool survives.
				u.logger.Warn("candidate source failed", slog.String("error", err.Error()))
				return nil
			}
			sources[i] = titles
			return nil
		})
	}
	_ = g.Wait()

	return mergeFirstWins(sources)
}

type sourceFetch func(ctx context.Context) ([]model.Title, error)

func (u *Usecase) sourceFetches(certification string, seeds []model.Seed) []sourceFetch {
	fetches := []sourceFetch{
		func(ctx context.Context) ([]model.Title, error) {
			return u.catalog.Trending(ctx, model.KindMovie, u.language)
		},
		func(ctx context.Context) ([]model.Title, error) {
			return u.catalog.Trending(ctx, model.KindSeries, u.language)
		},
	}

	for page := 1; page <= discoverPages; page++ {
		for _, kind := range []model.MediaKind{model.KindMovie, model.KindSeries} {
			page, kind := page, kind
			fetches = append(fetches, func(ctx context.Context) ([]model.Title, error) {
				return u.catalog.Discover(ctx, kind, page, certification, u.language)
			})
		}
	}

	for _, seed := range seeds {
		seed := seed
		fetches = append(fetches, func(ctx context.Context) ([]model.Title, error) {
			return u.catalog.Similar(ctx, seed.Kind, seed.TitleID, u.language)
		})
	}

	return fetches
}

func mergeFirstWins(sources [][]model.Title) []model.Title {
	var merged []model.Title
	seen := make(map[model.TitleKey]struct{})

	for _, titles := range sources {
		for _, t := range titles {
			key := t.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, t)
		}
	}

	return merged
}

// topSeeds deduplicates the newest-first seed list and bounds it.
func topSeeds(seeds []model.Seed, limit int) []model.Seed {
	seen := make(map[model.TitleKey]struct{})
	var top []model.Seed
	for _, s := range seeds {
		if len(top) == limit {
			break
		}
		key := s.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		top = append(top, s)
	}
	return top
}
