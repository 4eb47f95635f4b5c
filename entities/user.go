package entities

// User is an account identified by its email address. The password is
// persisted only as a bcrypt hash and never serialized.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Blogs        []Blog `gorm:"foreignKey:OwnerID" json:"-"`
}
