package auth

// Claims es la identidad del cuidador extraída del token.
type Claims struct {
	UserID      string
	Email       string
	DisplayName string
}
