package auth

type AuthServicePort interface {
	GetAdmin(email string) (*AdminUser, error)
	GetAdminByID(id string) (*AdminUser, error)
	CreateAdmin(email, password, name string) (*AdminUser, error)
}

var _ AuthServicePort = (*AuthService)(nil)
