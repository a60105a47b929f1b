package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "go-bazaar/internal/infrastructure/cache/port"
	"go-bazaar/internal/infrastructure/realtime"
	"go-bazaar/internal/pkg/auth"
	chatport "go-bazaar/internal/pkg/chat/application/port"
	chatHTTP "go-bazaar/internal/pkg/chat/presentation/http"
	productHTTP "go-bazaar/internal/pkg/product/presentation/http"
	userusecase "go-bazaar/internal/pkg/user/application/usecase"
	useradapter "go-bazaar/internal/pkg/user/persistence/repository/adapter"
	userHTTP "go-bazaar/internal/pkg/user/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1. The user
// directory is built here because the auth middleware, the account surface
// and the chat core all resolve identities through it.
func RegisterRoutes(
	r *gin.Engine,
	pool *pgxpool.Pool,
	cache cacheport.Cache,
	registry *realtime.Registry,
	tokens *auth.JWTManager,
) {
	directory := userusecase.NewLookupUserUseCase(useradapter.NewPgUserRepository(pool), cache)

	// Tokens whose subject no longer resolves to an account are rejected,
	// not just malformed or expired ones.
	authRequired := auth.Middleware(tokens, func(ctx context.Context, userID string) (bool, error) {
		_, err := directory.FindByID(ctx, userID)
		if errors.Is(err, chatport.ErrUserNotFound) {
			return false, nil
		}
		return err == nil, err
	})

	v1 := r.Group("/api/v1")

	userHTTP.RegisterRoutes(v1, pool, tokens, directory, authRequired)
	productHTTP.RegisterRoutes(v1, pool, authRequired)
	chatHTTP.RegisterRoutes(v1, pool, registry, tokens, directory, authRequired)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
}
