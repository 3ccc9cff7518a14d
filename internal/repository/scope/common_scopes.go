package scope

import "gorm.io/gorm"

// OrderByNewestNote is the stable tail of every note ordering.
func OrderByNewestNote(db *gorm.DB) *gorm.DB {
	return db.Order("notes.created_at DESC").Order("notes.id DESC")
}

// OrderByName sorts lookup tables (tags, time signatures) alphabetically.
func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC").Order("id ASC")
}

// OrderByRecentLike sorts favorites, most recently liked first.
func OrderByRecentLike(db *gorm.DB) *gorm.DB {
	return db.Order("note_likes.created_at DESC").Order("note_likes.id DESC")
}
