package owner

import "gorm.io/gorm"

// Scope returns a GORM scope that filters rows to one owner.
func Scope(ref Ref) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ref.IsGuest() {
			return db.Where("guest_id = ?", *ref.GuestID)
		}
		return db.Where("user_id = ?", *ref.UserID)
	}
}
