package models

import "gorm.io/gorm"

// ImageAsset tracks an image uploaded through the admin panel. The binary
// lives in Cloudinary; this row keeps the URL and enough metadata to list
// and delete it without hitting the Cloudinary admin API.
type ImageAsset struct {
	gorm.Model
	PublicID   string `json:"publicID" gorm:"uniqueIndex;size:128"`
	URL        string `json:"url"`
	FileName   string `json:"fileName"`
	Bytes      int64  `json:"bytes"`
	UploadedBy uint   `json:"uploadedBy" gorm:"index"`
}
