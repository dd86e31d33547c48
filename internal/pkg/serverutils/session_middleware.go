package serverutils

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionIDKey is the fiber.Ctx.Locals key the middleware stores the
// authenticated session ID under.
const SessionIDKey = "session_id"

// sessionTokenTTL matches the in-memory session expiration so a token never
// outlives the state it points at for long.
const sessionTokenTTL = time.Hour

// IssueSessionToken signs a bearer token for a newly created session.
func IssueSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(sessionTokenTTL).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// SessionMiddleware authenticates the session bearer token and exposes the
// session ID via Locals. The websocket route also accepts the token as a
// query parameter because browsers cannot set headers on upgrade requests.
func SessionMiddleware(ctx *fiber.Ctx) error {
	tokenStr := bearerToken(ctx)
	if tokenStr == "" {
		tokenStr = ctx.Query("token")
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals(SessionIDKey, sessionID)
	return ctx.Next()
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
