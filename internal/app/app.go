package app

import (
	"log"

	"github.com/humanbelnik/reelmatch/core/internal/config"
	http_group "github.com/humanbelnik/reelmatch/core/internal/delivery/http/group"
	http_init "github.com/humanbelnik/reelmatch/core/internal/delivery/http/init"
	http_match "github.com/humanbelnik/reelmatch/core/internal/delivery/http/match"
	http_recommend "github.com/humanbelnik/reelmatch/core/internal/delivery/http/recommend"
	http_seed "github.com/humanbelnik/reelmatch/core/internal/delivery/http/seed"
	http_voting "github.com/humanbelnik/reelmatch/core/internal/delivery/http/voting"
	ws_match "github.com/humanbelnik/reelmatch/core/internal/delivery/ws/match"
	infra_pg_init "github.com/humanbelnik/reelmatch/core/internal/infra/postgres/init"
	infra_postgres_group "github.com/humanbelnik/reelmatch/core/internal/infra/postgres/group"
	infra_postgres_seed "github.com/humanbelnik/reelmatch/core/internal/infra/postgres/seed"
	infra_postgres_vote "github.com/humanbelnik/reelmatch/core/internal/infra/postgres/vote"
	infra_catalog_cache "github.com/humanbelnik/reelmatch/core/internal/infra/redis/catalogcache"
	infra_redis_init "github.com/humanbelnik/reelmatch/core/internal/infra/redis/init"
	infra_tmdb "github.com/humanbelnik/reelmatch/core/internal/infra/tmdb"
	service_eligibility "github.com/humanbelnik/reelmatch/core/internal/service/eligibility"
	service_features "github.com/humanbelnik/reelmatch/core/internal/service/features"
	usecase_group "github.com/humanbelnik/reelmatch/core/internal/usecase/group"
	usecase_match "github.com/humanbelnik/reelmatch/core/internal/usecase/match"
	usecase_recommend "github.com/humanbelnik/reelmatch/core/internal/usecase/recommend"
	usecase_seed "github.com/humanbelnik/reelmatch/core/internal/usecase/seed"
	usecase_vote "github.com/humanbelnik/reelmatch/core/internal/usecase/vote"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	normalizer, err := service_eligibility.NewNormalizerFromFile(cfg.Providers.SynonymsPath)
	if err != nil {
		log.Fatalf("failed to load provider synonyms: %v", err)
	}

	catalogCache := infra_catalog_cache.New(redisConn, "catalog_cache")
	catalog := infra_tmdb.New(cfg.Catalog, catalogCache)
	extractor := service_features.New(catalog, cfg.Catalog.Language, cfg.Catalog.FallbackLang)

	groupRepository := infra_postgres_group.New(pgConn)
	seedRepository := infra_postgres_seed.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)

	groupUC := usecase_group.New(groupRepository)
	seedUC := usecase_seed.New(seedRepository)
	voteUC := usecase_vote.New(voteRepository, groupUC)
	matchUC := usecase_match.New(voteRepository, groupUC)
	recommendUC := usecase_recommend.New(catalog, extractor, seedUC, normalizer, cfg.Catalog.Language)

	hub := ws_match.NewHub(nil)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_group.New(groupUC))
	controllerPool.Add(http_seed.New(seedUC))
	controllerPool.Add(http_recommend.New(recommendUC, groupUC, normalizer))
	controllerPool.Add(http_voting.New(voteUC, hub))
	controllerPool.Add(http_match.New(matchUC))
	controllerPool.Add(ws_match.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
