package models

import "gorm.io/gorm"

// AdminUser is a back-office account. The site has no guest accounts; the
// only users of the API with credentials are the property owners.
type AdminUser struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"type:varchar(20);default:admin"` // admin, super_admin
}
