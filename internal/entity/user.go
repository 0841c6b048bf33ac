package entity

type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleDisabled Role = "disabled"
)

// Valid reports whether the role is one of the closed set. Free-form role
// strings never reach authorization checks.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleDisabled:
		return true
	}
	return false
}

type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         Role   `json:"role"`
}
