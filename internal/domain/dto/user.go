package dto

// User is the admin identity carried by sessions and tokens.
type User struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime,omitempty"`
}

const RoleAdmin = "admin"
