package auth

import "context"

// AuthVerifier resuelve el token Bearer del cuidador a sus Claims.
// Un error significa "sin identidad": el middleware sigue sin claims y
// las rutas protegidas responden 401.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
