package users

// User is a record in the external store. The Password field holds only
// the bcrypt hash after creation; the plaintext never leaves CreateUser.
type User struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}
