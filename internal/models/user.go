package models

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Username is unique across users, like Email. Either works for login.
	Username string `json:"username"`
	Email    string `json:"email"`

	Phone       string `json:"phone,omitempty"`
	DOB         string `json:"dob,omitempty"`
	PortraitURI string `json:"portraitUri,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. It must never
	// be serialized or returned outside the auth/storage boundary.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// UserPatch is a partial profile update. Nil fields are left unchanged.
// Username, email and the credential are not patchable through this path.
type UserPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DOB         *string `json:"dob,omitempty"`
	PortraitURI *string `json:"portraitUri,omitempty"`
}
