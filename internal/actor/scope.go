package actor

import "gorm.io/gorm"

// ForOwner returns a GORM scope that filters rows by owner_kind and owner_id.
func ForOwner(o Owner) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_kind = ? AND owner_id = ?", string(o.Kind), o.ID)
	}
}
