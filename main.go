package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	handler "github.com/piratesearch/magnet-finder/api"
	"github.com/piratesearch/magnet-finder/cache"
	"github.com/piratesearch/magnet-finder/config"
	"github.com/piratesearch/magnet-finder/logging"
	"github.com/piratesearch/magnet-finder/monitoring"
	"github.com/piratesearch/magnet-finder/requester"
	"github.com/piratesearch/magnet-finder/scrape"
	"github.com/piratesearch/magnet-finder/tpb"
)

func main() {
	logging.InitLogger()
	cfg := config.FromEnv()

	var redis *cache.Redis
	if !cfg.CacheDisabled {
		redis = cache.NewRedis(cfg.RedisHost)
	}
	metrics := monitoring.NewMetrics()
	metrics.Register()

	client := tpb.NewClient(tpb.DefaultTables(), redis, metrics)
	client.SetCacheExpiration(cfg.CacheExpiration)
	details := scrape.NewDetailScraper(requester.New(redis, metrics, 10*time.Second))
	indexer := handler.NewIndexer(client, details, metrics)

	indexerMux := http.NewServeMux()
	metricsMux := http.NewServeMux()

	indexerMux.HandleFunc("/", handler.HandlerIndex)
	indexerMux.HandleFunc("/search", indexer.HandlerSearch)
	indexerMux.HandleFunc("/magnet", indexer.HandlerMagnet)
	indexerMux.HandleFunc("/details", indexer.HandlerDetails)

	metricsMux.Handle("/metrics", promhttp.Handler())

	go func() {
		err := http.ListenAndServe(cfg.MetricsAddr, metricsMux)
		if err != nil {
			panic(err)
		}
	}()

	logging.Info().Str("addr", cfg.ListenAddr).Msg("magnet-finder listening")
	err := http.ListenAndServe(cfg.ListenAddr, logging.HTTPLoggingMiddleware(indexerMux))
	if err != nil {
		panic(err)
	}
}
