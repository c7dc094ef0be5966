package domain

import "github.com/google/uuid"

// UserID identifies a user issued by the external identity provider. Curators
// are ordinary users, so the same type identifies them.
type UserID uuid.UUID

// String returns the canonical UUID form.
func (u UserID) String() string { return uuid.UUID(u).String() }

// MarshalText encodes the ID in its canonical form, so it renders as a JSON
// string and can be used as a map key.
func (u UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(u).MarshalText()
}

// UnmarshalText parses any UUID form accepted by uuid.Parse.
func (u *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(u).UnmarshalText(b)
}

// ParseUserID parses s into a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)

	return UserID(id), err //nolint: wrapcheck
}
