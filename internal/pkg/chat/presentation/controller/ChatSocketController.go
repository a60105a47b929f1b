package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-bazaar/internal/infrastructure/realtime"
	"go-bazaar/internal/pkg/auth"
	"go-bazaar/internal/pkg/chat/application/port"
	"go-bazaar/internal/pkg/chat/application/usecase"
	chat "go-bazaar/internal/pkg/chat/domain"
)

const defaultReadTimeout = 60 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect from the same origin that serves the app;
		// cross-origin policy is enforced at the proxy.
		return true
	},
}

// ChatSocketController authenticates websocket handshakes and processes live
// chat frames until the client disconnects.
type ChatSocketController struct {
	registry        *realtime.Registry
	notifier        *LiveNotifier
	tokens          *auth.JWTManager
	directory       port.UserDirectory
	sendUC          *usecase.SendMessageUseCase
	markReadUC      *usecase.MarkConversationReadUseCase
	inflightTimeout time.Duration
}

func NewChatSocketController(
	registry *realtime.Registry,
	notifier *LiveNotifier,
	tokens *auth.JWTManager,
	directory port.UserDirectory,
	sendUC *usecase.SendMessageUseCase,
	markReadUC *usecase.MarkConversationReadUseCase,
) *ChatSocketController {
	return &ChatSocketController{
		registry:        registry,
		notifier:        notifier,
		tokens:          tokens,
		directory:       directory,
		sendUC:          sendUC,
		markReadUC:      markReadUC,
		inflightTimeout: 5 * time.Second,
	}
}

// Handle authenticates the handshake, upgrades to websocket and runs the
// read loop. Authentication failure terminates the connection attempt; no
// later error does.
func (ctl *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ctl.authenticate(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication error: " + err.Error(),
			})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			return
		}

		conn := realtime.NewConnection(claims.UserID, claims.Username, ws)
		ctl.registry.Register(conn)
		conn.Start()
		defer func() {
			ctl.registry.Unregister(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
			log.Printf("chat: user disconnected: %s", conn.Username)
		}()

		log.Printf("chat: user connected: %s (%s)", conn.Username, conn.UserID)

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		ctl.reply(conn, connectedEvent{Type: "connected", UserID: conn.UserID})

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "invalid payload")
				continue
			}

			switch frame.Type {
			case frameJoinConversation:
				ctl.handleJoin(conn, frame)
			case frameSendMessage:
				ctl.handleSendMessage(c, conn, frame)
			case frameTyping:
				ctl.notifier.UserTyping(frame.ReceiverID, conn.UserID, conn.Username)
			case frameStopTyping:
				ctl.notifier.UserStopTyping(frame.ReceiverID, conn.UserID)
			case frameMarkRead:
				ctl.handleMarkRead(c, conn, frame)
			default:
				ctl.replyError(conn, "unknown event type")
			}
		}
	}
}

// authenticate verifies the handshake credential and that its subject still
// exists. The token travels in the "token" query parameter or a Bearer header.
func (ctl *ChatSocketController) authenticate(c *gin.Context) (*auth.Claims, error) {
	token := c.Query("token")
	if token == "" {
		header := c.GetHeader("Authorization")
		token = strings.TrimPrefix(header, "Bearer ")
	}

	claims, err := ctl.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()
	if _, err := ctl.directory.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, port.ErrUserNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return claims, nil
}

func (ctl *ChatSocketController) handleJoin(conn *realtime.Connection, frame inboundFrame) {
	if frame.OtherUserID == "" {
		ctl.replyError(conn, "otherUserId is required")
		return
	}
	roomID := chat.ConversationRoomID(conn.UserID, frame.OtherUserID)
	ctl.registry.Join(roomID, conn)
	log.Printf("chat: user %s joined conversation: %s", conn.Username, roomID)
}

func (ctl *ChatSocketController) handleSendMessage(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	_, err := ctl.sendUC.Execute(ctx, usecase.SendMessageInput{
		SenderID:   conn.UserID,
		SenderName: conn.Username,
		ReceiverID: frame.ReceiverID,
		Body:       frame.Message,
	})
	if err != nil {
		ctl.replyError(conn, sendFailureReason(err))
		return
	}
	// Fan-out happened inside the use case; the sender's own room-joined
	// connections received the new-message event there.
}

func (ctl *ChatSocketController) handleMarkRead(c *gin.Context, conn *realtime.Connection, frame inboundFrame) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctl.inflightTimeout)
	defer cancel()

	err := ctl.markReadUC.Execute(ctx, usecase.MarkConversationReadInput{
		ReaderID:      conn.UserID,
		CounterpartID: frame.SenderID,
	})
	if err != nil {
		ctl.replyError(conn, "Failed to mark messages as read")
	}
}

// sendFailureReason maps use-case failures to the human-readable reasons the
// live protocol reports. None of them faults the connection.
func sendFailureReason(err error) string {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return "Receiver not found"
	case errors.Is(err, usecase.ErrValidation):
		return err.Error()
	default:
		return "Failed to send message"
	}
}

func (ctl *ChatSocketController) reply(conn *realtime.Connection, event any) {
	if payload, err := json.Marshal(event); err == nil {
		_ = conn.Send(payload)
	}
}

func (ctl *ChatSocketController) replyError(conn *realtime.Connection, message string) {
	ctl.reply(conn, errorEvent{Type: "error", Message: message})
}
