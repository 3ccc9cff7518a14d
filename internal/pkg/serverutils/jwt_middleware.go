package serverutils

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	UserIdLocal     = "user_id"
	accessTokenName = "access_token"
)

// JwtMiddleware accepts an HMAC-signed token from the Authorization header or
// the access_token cookie and stores the caller id under UserIdLocal.
func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing token"))
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid claims"))
		}

		userId, ok := claimUserId(claims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid claims"))
		}

		ctx.Locals(UserIdLocal, userId)
		return ctx.Next()
	}
}

// UserId returns the caller id stored by JwtMiddleware.
func UserId(ctx *fiber.Ctx) (int64, bool) {
	userId, ok := ctx.Locals(UserIdLocal).(int64)
	return userId, ok
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ctx.Cookies(accessTokenName)
}

func claimUserId(claims jwt.MapClaims) (int64, bool) {
	for _, key := range []string{"id", "user_id"} {
		switch v := claims[key].(type) {
		case float64:
			if v > 0 && v == float64(int64(v)) {
				return int64(v), true
			}
		case string:
			id, err := strconv.ParseInt(v, 10, 64)
			if err == nil && id > 0 {
				return id, true
			}
		}
	}
	return 0, false
}
