package main

import (
	"log"
	"net/http"
	"time"

	"tiedan-noodle/api-gateway/internal/gateway"
	"tiedan-noodle/config"

	"github.com/rs/cors"
)

func newServer() http.Handler {
	cfg := gateway.Config{
		ShopSvcURL:  config.GetEnv("SHOP_SVC_URL", "http://localhost:8081"),
		StatsSvcURL: config.GetEnv("STATS_SVC_URL", "http://localhost:8082"),
	}

	// Submissions hold the request open for SUBMIT_DELAY, so the timeout
	// stays well above it.
	client := &http.Client{Timeout: config.GetDuration("UPSTREAM_TIMEOUT", 30*time.Second)}
	gw := gateway.NewGateway(cfg, client)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	config.LoadDotEnv()

	addr := config.GetEnv("GATEWAY_ADDR", ":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, newServer()))
}
