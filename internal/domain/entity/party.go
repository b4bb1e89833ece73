package entity

import (
	"strings"
	"time"
)

// Customer representa un cliente (referenciado por Sale).
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
}

// FullName nombre y apellido.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Vendor representa un proveedor (referenciado por Product).
type Vendor struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	CreatedAt   time.Time
}

// FullName nombre y apellido.
func (v Vendor) FullName() string {
	return strings.TrimSpace(v.FirstName + " " + v.LastName)
}
