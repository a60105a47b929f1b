package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-bazaar/internal/infrastructure/realtime"
	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/port"
	"go-bazaar/internal/pkg/chat/application/usecase"
	"go-bazaar/internal/pkg/chat/persistence/repository/adapter"
	"go-bazaar/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes wires the chat endpoints under the given router group. The
// REST surface sits behind the auth middleware; the websocket endpoint runs
// its own handshake authentication.
func RegisterRoutes(
	g *gin.RouterGroup,
	pool *pgxpool.Pool,
	registry *realtime.Registry,
	tokens *auth.JWTManager,
	directory port.UserDirectory,
	authRequired gin.HandlerFunc,
) {
	repo := adapter.NewPgMessageRepository(pool)
	notifier := controller.NewLiveNotifier(registry)

	sendUC := usecase.NewSendMessageUseCase(repo, directory, notifier)
	historyUC := usecase.NewGetHistoryUseCase(repo, directory, notifier)
	listUC := usecase.NewListConversationsUseCase(repo)
	markConvUC := usecase.NewMarkConversationReadUseCase(repo, notifier)
	markOneUC := usecase.NewMarkMessageReadUseCase(repo)
	unreadUC := usecase.NewGetUnreadCountUseCase(repo)

	socketCtl := controller.NewChatSocketController(registry, notifier, tokens, directory, sendUC, markConvUC)

	g.GET("/chat/ws", socketCtl.Handle())

	authed := g.Group("", authRequired)
	authed.GET("/chat/conversations", controller.NewListConversationsController(listUC).Handle())
	authed.GET("/chat/messages/:userId", controller.NewGetHistoryController(historyUC).Handle())
	authed.POST("/chat/messages", controller.NewSendMessageController(sendUC).Handle())
	authed.PUT("/chat/messages/:id/read", controller.NewMarkMessageReadController(markOneUC).Handle())
	authed.GET("/chat/unread-count", controller.NewUnreadCountController(unreadUC).Handle())
}
