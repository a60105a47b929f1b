package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-bazaar/internal/pkg/product/application/usecase"
	"go-bazaar/internal/pkg/product/persistence/repository/adapter"
	"go-bazaar/internal/pkg/product/presentation/controller"
)

// RegisterRoutes wires the product endpoints under the given router group.
// Reads are public; writes sit behind the auth middleware.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, authRequired gin.HandlerFunc) {
	repo := adapter.NewPgProductRepository(pool)

	listUC := usecase.NewListProductsUseCase(repo)
	getUC := usecase.NewGetProductUseCase(repo)
	createUC := usecase.NewCreateProductUseCase(repo)
	updateUC := usecase.NewUpdateProductUseCase(repo)
	deleteUC := usecase.NewDeleteProductUseCase(repo)

	g.GET("/products", controller.NewListProductsController(listUC).Handle())
	g.GET("/products/:id", controller.NewGetProductController(getUC).Handle())

	authed := g.Group("", authRequired)
	authed.POST("/products", controller.NewCreateProductController(createUC).Handle())
	authed.PUT("/products/:id", controller.NewUpdateProductController(updateUC).Handle())
	authed.DELETE("/products/:id", controller.NewDeleteProductController(deleteUC).Handle())
}
