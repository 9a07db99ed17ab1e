package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tiedan-noodle/config"
	httpapi "tiedan-noodle/stats-svc/internal/api/http"
	"tiedan-noodle/stats-svc/internal/service"
	"tiedan-noodle/stats-svc/internal/storage"

	"github.com/redis/go-redis/v9"
)

func newStore(rdb *redis.Client) *storage.Store {
	return storage.NewStore(rdb, config.StoreLocation())
}

func newRouter(store service.StoreInterface) http.Handler {
	return httpapi.NewRouter(httpapi.NewHandler(service.NewStatsService(store)))
}

func main() {
	config.LoadDotEnv()

	rdb := config.MustInitRedis()
	defer rdb.Close()
	store := newStore(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.GetBool("USE_KAFKA", true) {
		reader := config.NewKafkaReader(config.SubmissionsTopic(), "stats-svc")
		defer reader.Close()
		go service.NewConsumer(reader, store).Start(ctx)
	}

	if err := httpapi.Serve(ctx, config.GetEnv("STATS_ADDR", ":8082"), newRouter(store)); err != nil {
		log.Printf("Stats Service stopped: %v", err)
	}
}
