package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentDocKey is the fixed key of the single website-content document.
// The slash-style key leaves room for more documents later.
const ContentDocKey = "website/content"

// ContentDocument stores the whole editable website content (hero texts,
// price tables, contact details, image lists) as one JSON document. Readers
// merge it over compiled-in defaults, so a partial document is fine.
type ContentDocument struct {
	gorm.Model
	DocKey string         `json:"docKey" gorm:"uniqueIndex;size:128"`
	Data   datatypes.JSON `json:"data"`
}
