package auth

// Roles carried in the JWT and checked by middleware.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}
