package entities

// Blog is a post owned by exactly one user. Ownership is fixed at creation;
// only the owner may update or delete the row. Image holds the stored path
// of an uploaded file, empty when the post has none.
type Blog struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Tags    string `json:"tags"`
	Image   string `json:"image"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
}
