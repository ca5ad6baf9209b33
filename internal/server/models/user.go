package models

import "github.com/dmitrijs2005/repovault/internal/encx"

// User is the minimal account record owning repositories and items.
// Credentials live outside the storage engine.
type User struct {
	id          UserID
	Login       encx.EncString `json:"login"`
	Email       encx.EncString `json:"-"`
	DisplayName encx.EncString `json:"name"`
}

func (u *User) ID() UserID { return u.id }

func (u *User) SetID(id UserID) error { return assignID(&u.id, id) }
