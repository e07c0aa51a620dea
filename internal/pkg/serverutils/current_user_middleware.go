package serverutils

import (
	"os"

	"notebook-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const currentUserKey = "current_user"

// CurrentUserMiddleware resolves the bearer token into an
// entity.CurrentUser and stores it in the request locals. It never
// rejects the request itself; an invalid or missing token yields an
// unauthenticated user and the service layer decides what that means.
func CurrentUserMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals(currentUserKey, resolveUser(ctx))
	return ctx.Next()
}

// CurrentUser returns the identity stored by CurrentUserMiddleware.
func CurrentUser(ctx *fiber.Ctx) entity.CurrentUser {
	if user, ok := ctx.Locals(currentUserKey).(entity.CurrentUser); ok {
		return user
	}
	return entity.CurrentUser{}
}

func resolveUser(ctx *fiber.Ctx) entity.CurrentUser {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return entity.CurrentUser{}
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return entity.CurrentUser{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.CurrentUser{}
	}

	subject, _ := claims.GetSubject()
	if _, err := uuid.Parse(subject); err != nil {
		return entity.CurrentUser{}
	}

	name, _ := claims["name"].(string)

	return entity.CurrentUser{
		Id:              subject,
		Name:            name,
		IsAuthenticated: true,
	}
}
