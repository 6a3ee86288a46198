package entities

// DocumentRecord is the SQLite row holding one BSON-encoded Document.
type DocumentRecord struct {
	ID         uint   `gorm:"primaryKey"`
	Collection string `gorm:"index;not null"`
	Body       []byte `gorm:"not null"`
	CreatedAt  int64  `gorm:"autoCreateTime"`
}
