package model

import "time"

// Role identifies the authorization level carried by auth tokens.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a storefront customer. User management itself lives outside
// this service; the record exists for order ownership and display data.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}
