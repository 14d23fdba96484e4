package model

import (
	"time"

	"github.com/google/uuid"
)

// Address is a user shipping address. The first address in a user's list is
// treated as the primary shipping target.
type Address struct {
	Label   string `json:"label,omitempty"`
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// CartLine is a single cart entry. PriceAtAdd is frozen at the moment the line
// is created and never refreshed from the catalogue.
type CartLine struct {
	ProductID  uuid.UUID `json:"productId"`
	Qty        int       `json:"qty"`
	PriceAtAdd float64   `json:"priceAtAdd"`
}

// User is a storefront account keyed by phone number. Addresses and Cart are
// stored as jsonb documents on the user row; cart mutations rewrite the whole
// cart column (document-level last-write-wins).
type User struct {
	Phone     string     `json:"phone" db:"phone"`
	Name      string     `json:"name" db:"name"`
	Addresses []Address  `json:"addresses" db:"addresses"`
	Cart      []CartLine `json:"cart" db:"cart"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// PrimaryAddress returns the user's first stored address, or nil.
func (u *User) PrimaryAddress() *Address {
	if len(u.Addresses) == 0 {
		return nil
	}
	return &u.Addresses[0]
}

// Admin is a back-office account.
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// AuthResult is the payload returned by signup and login.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
