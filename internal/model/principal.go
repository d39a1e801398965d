package model

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RolePartner  Role = "PARTNER"
)

type Principal struct {
	Phone string
	Name  string
	Role  Role
}

func (p Principal) IsCustomer() bool {
	return p.Role == RoleCustomer
}

func (p Principal) IsPartner() bool {
	return p.Role == RolePartner
}

// User is the customer profile kept in local state after login.
type User struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Token string `json:"token,omitempty"`
}
