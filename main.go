package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"credcheck/analysis"
	"credcheck/api"
	"credcheck/auth"
	"credcheck/common"
	"credcheck/config"
	"credcheck/events"
	"credcheck/history"
	"credcheck/inference"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	store, err := history.NewRedisStore(history.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("history store error: %v", err)
	}
	defer store.Close()

	client := inference.NewClient(cfg.InferenceURL, cfg.InferenceTimeout)

	var publisher analysis.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := events.NewProducer(events.ProducerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Fatalf("kafka producer error: %v", err)
		}
		defer producer.Close()
		publisher = producer
		log.Printf("Publishing analysis events to %v", cfg.KafkaBrokers)
	} else {
		log.Printf("Kafka not configured; skipping event publishing")
	}

	var archiver analysis.Archiver
	if cfg.S3Bucket != "" {
		s3c, err := common.NewS3(context.Background(), common.S3Config{
			Region:       cfg.S3Region,
			Profile:      cfg.S3Profile,
			UsePathStyle: cfg.S3UsePathStyle,
		})
		if err != nil {
			log.Printf("Warning: failed to init S3 client: %v (archival disabled)", err)
		} else {
			archiver = common.NewAnalysisArchive(s3c, cfg.S3Bucket, cfg.S3Prefix)
			log.Printf("Archiving analyses to S3 bucket %q with prefix %q", cfg.S3Bucket, cfg.S3Prefix)
		}
	} else {
		log.Printf("S3 not configured; skipping archival")
	}

	service := analysis.NewService(client, store, publisher, archiver)
	verifier := auth.NewVerifier(cfg.JWTSecret)
	server := api.NewServer(service, store, verifier, client)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("Starting API server on %s", httpServer.Addr)
		log.Println("API endpoints available:")
		log.Println("  POST   /api/analyze")
		log.Println("  POST   /api/history")
		log.Println("  GET    /api/history")
		log.Println("  DELETE /api/history/:id")
		log.Println("  GET    /health")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
