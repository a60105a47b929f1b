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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	v1 "go-bazaar/cmd/api/router/v1"
	cacheadapter "go-bazaar/internal/infrastructure/cache/adapter"
	cacheport "go-bazaar/internal/infrastructure/cache/port"
	"go-bazaar/internal/infrastructure/database"
	"go-bazaar/internal/infrastructure/realtime"
	"go-bazaar/internal/pkg/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	// The cache is optional. Without Redis the user directory hits the
	// database on every lookup; everything still works.
	var cache cacheport.Cache
	if redisCache, err := cacheadapter.NewRedisAdapter(); err != nil {
		log.Printf("Warning: running without cache: %v", err)
	} else {
		cache = redisCache
		defer redisCache.Close()
	}

	tokens, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatalf("failed to configure tokens: %v", err)
	}

	registry := realtime.NewRegistry()
	defer registry.Close()

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	v1.RegisterRoutes(r, pool, cache, registry, tokens)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
