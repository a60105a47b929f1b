package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-bazaar/internal/pkg/auth"
	chatport "go-bazaar/internal/pkg/chat/application/port"
	"go-bazaar/internal/pkg/user/application/usecase"
	"go-bazaar/internal/pkg/user/persistence/repository/adapter"
	"go-bazaar/internal/pkg/user/presentation/controller"
)

// RegisterRoutes wires the account endpoints under the given router group.
// The directory is passed in because the auth middleware already holds it.
func RegisterRoutes(
	g *gin.RouterGroup,
	pool *pgxpool.Pool,
	tokens *auth.JWTManager,
	directory chatport.UserDirectory,
	authRequired gin.HandlerFunc,
) {
	repo := adapter.NewPgUserRepository(pool)
	hasher := auth.NewPasswordHasher()

	signupUC := usecase.NewSignupUseCase(repo, hasher, tokens)
	loginUC := usecase.NewLoginUseCase(repo, hasher, tokens)

	g.POST("/auth/signup", controller.NewSignupController(signupUC).Handle())
	g.POST("/auth/login", controller.NewLoginController(loginUC).Handle())

	authed := g.Group("", authRequired)
	authed.GET("/auth/me", controller.NewMeController(directory).Handle())
}
