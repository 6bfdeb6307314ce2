package entity

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	Surname      string    `db:"surname"`
	Address1     string    `db:"address1"`
	Postcode     string    `db:"postcode"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// Identity is the caller identity passed explicitly into every core
// operation. Nil means a guest request.
type Identity struct {
	UserID    int64
	Email     string
	FirstName string
	Surname   string
	IsAdmin   bool
}

func (i *Identity) FullName() string {
	return i.FirstName + " " + i.Surname
}

func IdentityOf(u *User) *Identity {
	return &Identity{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		Surname:   u.Surname,
		IsAdmin:   u.IsAdmin,
	}
}
