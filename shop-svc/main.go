package main

import (
	"context"
	"log"
	"time"

	"tiedan-noodle/config"
	httpapi "tiedan-noodle/shop-svc/internal/api/http"
	"tiedan-noodle/shop-svc/internal/availability"
	"tiedan-noodle/shop-svc/internal/catalog"
	"tiedan-noodle/shop-svc/internal/service"
	"tiedan-noodle/shop-svc/internal/storage"
)

type backends struct {
	carts       service.CartRepository
	submissions service.SubmissionRepository
	guard       service.InFlightGuard
	publisher   service.SubmissionPublisher
}

// initBackends picks Postgres, Redis and Kafka when enabled and falls back to
// the in-memory stores otherwise.
func initBackends() backends {
	cartTTL := config.GetDuration("CART_TTL", 24*time.Hour)
	inflightTTL := config.GetDuration("INFLIGHT_TTL", 30*time.Second)

	b := backends{
		carts:       storage.NewMemoryCartRepository(cartTTL),
		submissions: storage.NewMemorySubmissionRepository(),
		guard:       storage.NewMemoryGuard(),
	}

	if config.GetBool("USE_POSTGRES", false) {
		repo := storage.NewPostgresRepository(config.MustInitPostgres())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal(err)
		}
		b.submissions = repo
		log.Println("Submission log: postgres")
	}

	if config.GetBool("USE_REDIS", false) {
		rdb := config.MustInitRedis()
		b.carts = storage.NewRedisCartRepository(rdb, cartTTL)
		b.guard = storage.NewRedisGuard(rdb, inflightTTL)
		log.Println("Carts and in-flight guard: redis")
	}

	if config.GetBool("USE_KAFKA", false) {
		topic := config.SubmissionsTopic()
		b.publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(topic))
		log.Printf("Publishing submissions to kafka topic %s", topic)
	}

	return b
}

func newHandler(b backends) *httpapi.Handler {
	menu := catalog.Default()
	qr := service.DefaultQRGenerator{}

	opts := []service.Option{
		service.WithDelay(config.GetDuration("SUBMIT_DELAY", service.DefaultSubmitDelay)),
		service.WithStrictContact(config.GetBool("STRICT_CONTACT_RULES", false)),
		service.WithPickupQR(qr, config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")),
	}

	calc := availability.NewCalculator(catalog.Store().WeeklyHours, config.StoreLocation(),
		availability.WithStrictNames(config.GetBool("STRICT_CONTACT_RULES", false)))

	return httpapi.NewHandler(
		menu,
		service.NewCartService(b.carts, menu),
		service.NewOrderService(b.submissions, b.publisher, b.guard, opts...),
		service.NewReservationService(calc, b.submissions, b.publisher, b.guard, opts...),
		qr,
	)
}

func main() {
	config.LoadDotEnv()

	handler := newHandler(initBackends())
	httpapi.StartServer(config.GetEnv("SHOP_ADDR", ":8081"), httpapi.NewRouter(handler))
}
