package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chonapi/internal/catalog"
	"chonapi/internal/config"
	"chonapi/internal/repository"
	"chonapi/internal/service"
	"chonapi/internal/store"
	"chonapi/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// The catalog is compiled in; refuse to start on inconsistent data
	if err := catalog.Validate(); err != nil {
		log.Fatal("Catalog validation failed:", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories and state store
	submissionRepo := repository.NewSubmissionRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	stateStore := store.NewRedisStore(rdb)

	// Submissions and the accounts created from them go to the remote
	// archive when configured, the local database otherwise.
	var gateway service.Gateway
	if cfg.GatewayURL != "" {
		log.Printf("Using remote submission gateway: %s", cfg.GatewayURL)
		gateway = service.NewGatewayClient(cfg.GatewayURL)
	} else {
		log.Println("Using local submission store")
		gateway = service.NewLocalGateway(submissionRepo, accountRepo)
	}

	// Initialize services
	scoringSvc := service.NewScoringService()
	matchSvc := service.NewMatchService()
	flowSvc := service.NewFlowService(stateStore, scoringSvc, matchSvc)
	submissionSvc := service.NewSubmissionService(gateway, flowSvc)
	authSvc := service.NewAuthService(accountRepo, gateway, cfg.JWTSecret)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		FlowService:       flowSvc,
		SubmissionService: submissionSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/respondents")
		log.Println("  GET  /v1/test/state")
		log.Println("  POST /v1/test/{begin,identity,privacy/ack,answers,next,back,finish,restart}")
		log.Println("  GET  /v1/test/{section,results}")
		log.Println("  GET/POST /v1/submissions")
		log.Println("  POST /v1/auth/{accounts,login}")
		log.Println("  GET  /v1/profile")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
