package models

import "time"

type User struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username         string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	FirstName        string     `gorm:"size:150" json:"first_name"`
	LastName         string     `gorm:"size:150" json:"last_name"`
	ProfilePicture   string     `json:"profile_picture"` // public URL, storage is external
	Bio              string     `gorm:"type:text" json:"bio"`
	PhoneNumber      string     `gorm:"size:20" json:"phone_number"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Address          string     `gorm:"size:200" json:"address"`
	City             string     `gorm:"size:100" json:"city"`
	Province         string     `gorm:"size:100" json:"province"`
	PostalCode       string     `gorm:"size:20" json:"postal_code"`
	LastPurchaseDate *time.Time `json:"last_purchase_date"`
	Orders           []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews          []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// FullName returns first and last name joined with a space, trimmed when
// either is empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
