package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mrsameer/rag-with-gemini/internal/pkg/logger"
	internalWS "github.com/mrsameer/rag-with-gemini/internal/websocket"
)

// ProgressHandler upgrades authenticated clients onto the ingestion event
// stream.
type ProgressHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewProgressHandler(hub *internalWS.Hub, log logger.ILogger) *ProgressHandler {
	return &ProgressHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ProgressHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws", h.ServeWs)
}

// ServeWs handles websocket requests from the peer. The token comes from the
// query string because browsers cannot set headers on upgrade requests; the
// Authorization header is accepted for non-browser clients.
func (h *ProgressHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("ProgressHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing session_id"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ProgressHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("ProgressHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
