package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/czdsgnr/roubenky/models"
	"github.com/czdsgnr/roubenky/storage"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultContent is the compiled-in fallback for the website-content
// document. The stored document is merged over it, so a partial document
// (or none at all) still renders a complete site.
func DefaultContent() map[string]interface{} {
	return map[string]interface{}{
		"homepage": map[string]interface{}{
			"hero": map[string]interface{}{
				"title":       "Luxusní soukromé wellness v srdci hor",
				"subtitle":    "Králická Roubenka",
				"description": "Exkluzivní ubytování pro 14 hostů s privátním wellness centrem a celoročně vyhřívaným bazénem v srdci Krkonoš",
				"images":      []interface{}{},
			},
			"uvodnik": map[string]interface{}{
				"title":       "Vítejte v Králické Roubence",
				"description": "Objevte krásu tradičního horského bydlení v moderním pojetí. Naše roubenka nabízí jedinečný zážitek spojující autentickou atmosféru s luxusním komfortem.",
			},
			"about": map[string]interface{}{
				"badge":       "LUXUSNÍ UBYTOVÁNÍ",
				"title":       "Dokonalé spojení",
				"subtitle":    "tradice a luxusu",
				"description": "Autentická horská roubenka v srdci přírody Králického Sněžníku nabízí jedinečnou kombinaci tradičního designu s nejmodernějším vybavením.",
			},
		},
		"pricing": map[string]interface{}{
			"hero": map[string]interface{}{
				"badge":       "CENÍK UBYTOVÁNÍ",
				"title":       "Pronájem celé",
				"subtitle":    "roubenky",
				"description": "Roubenku si můžete pronajmout výhradně jako celek. Všechny ceny jsou uvedeny s DPH.",
			},
			"standard": map[string]interface{}{
				"title":    "Standardní ceník",
				"subtitle": "Ceny za pronájem celé roubenky • Minimální pobyt 2 noci",
				"plans": []interface{}{
					map[string]interface{}{"nights": "2 noci", "price": "23 000", "perNight": "11 500"},
					map[string]interface{}{"nights": "3 noci", "price": "30 000", "perNight": "10 000", "popular": true},
					map[string]interface{}{"nights": "4 noci", "price": "36 000", "perNight": "9 000"},
					map[string]interface{}{"nights": "5 nocí", "price": "43 000", "perNight": "8 600"},
					map[string]interface{}{"nights": "6 nocí", "price": "49 000", "perNight": "8 167"},
					map[string]interface{}{"nights": "7 nocí", "price": "55 000", "perNight": "7 857"},
				},
			},
		},
		"contact": map[string]interface{}{
			"info": map[string]interface{}{
				"title": "Kontaktní informace",
				"phone": map[string]interface{}{
					"number": "+420 123 456 789",
					"hours":  "Denně 8:00 - 20:00",
				},
				"email": map[string]interface{}{
					"address":  "info@kralickaroubenka.cz",
					"response": "Odpověď do 24 hodin",
				},
				"address": map[string]interface{}{
					"street": "Hynčice pod Sušinou",
					"city":   "Králický Sněžník",
					"zip":    "561 69",
				},
				"hours": map[string]interface{}{
					"checkin":  "Check-in: 15:00 - 20:00",
					"checkout": "Check-out: do 10:00",
					"note":     "Pozdní příjezd po domluvě",
				},
			},
		},
	}
}

// MergeContent deep-merges src into dst: nested objects merge key by key,
// anything else (including arrays) is replaced wholesale, matching the
// merge semantics the admin panel always relied on.
func MergeContent(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]interface{})
		dstMap, dstIsMap := out[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			out[k] = MergeContent(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}

// LoadContent returns the stored content document merged over the defaults.
// A missing row or a read error degrades to the defaults with a logged
// diagnostic; readers never see an error.
func LoadContent() map[string]interface{} {
	defaults := DefaultContent()

	var doc models.ContentDocument
	err := storage.DB.Where("doc_key = ?", models.ContentDocKey).First(&doc).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Println("⚠️  Failed to load content document, serving defaults:", err)
		}
		return defaults
	}

	var stored map[string]interface{}
	if err := json.Unmarshal(doc.Data, &stored); err != nil {
		log.Println("⚠️  Content document is not valid JSON, serving defaults:", err)
		return defaults
	}

	return MergeContent(defaults, stored)
}

// SaveContentPatch merges a partial document into the stored one and
// persists the result, creating the document on first write.
func SaveContentPatch(patch map[string]interface{}) (map[string]interface{}, error) {
	var doc models.ContentDocument
	err := storage.DB.Where("doc_key = ?", models.ContentDocKey).First(&doc).Error

	stored := map[string]interface{}{}
	if err == nil && len(doc.Data) > 0 {
		if unmarshalErr := json.Unmarshal(doc.Data, &stored); unmarshalErr != nil {
			log.Println("⚠️  Replacing unreadable content document:", unmarshalErr)
			stored = map[string]interface{}{}
		}
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	merged := MergeContent(stored, patch)

	data, marshalErr := json.Marshal(merged)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal content document: %w", marshalErr)
	}

	if err == gorm.ErrRecordNotFound {
		doc = models.ContentDocument{DocKey: models.ContentDocKey, Data: datatypes.JSON(data)}
		if createErr := storage.DB.Create(&doc).Error; createErr != nil {
			return nil, createErr
		}
	} else {
		doc.Data = datatypes.JSON(data)
		if saveErr := storage.DB.Save(&doc).Error; saveErr != nil {
			return nil, saveErr
		}
	}

	return MergeContent(DefaultContent(), merged), nil
}
