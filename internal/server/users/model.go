package users

// User is a credential record. Records are created on registration and
// never updated or deleted. The JSON tags match the on-disk users.json
// format, where the bcrypt hash is stored under "password".
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}
