package repository

import (
	"strings"

	"gorm.io/gorm"
)

// ContactCountryScope keeps links that have at least one contact in the
// given country. An empty country disables the filter.
func ContactCountryScope(country string) func(db *gorm.DB) *gorm.DB {
	return contactFieldScope("country", country)
}

// ContactCityScope keeps links that have at least one contact in the given city.
func ContactCityScope(city string) func(db *gorm.DB) *gorm.DB {
	return contactFieldScope("city", city)
}

// EXISTS instead of a join so a link with several matching contacts is
// returned once and counted once.
func contactFieldScope(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(
			"EXISTS (SELECT 1 FROM contacts WHERE contacts.link_id = links.id AND contacts."+column+" = ?)",
			value,
		)
	}
}

// NameSearchScope does a case-insensitive substring match on name.
func NameSearchScope(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}
		return db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
}
