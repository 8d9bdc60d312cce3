package models

// Translation represents a stored translation for one field of one persisted
// entity in one locale. Rows are created lazily the first time a field is
// translated through the external provider and updated in place on
// retranslation; there is no versioning or history.
type Translation struct {
	ID uint `gorm:"primaryKey"`

	// Locale is the short target locale code (e.g. "en").
	Locale string `gorm:"type:varchar(8);not null;uniqueIndex:uniq_translation;index:idx_translation_lookup"`
	// ObjectClass identifies the owning entity type (e.g. "models.Product").
	ObjectClass string `gorm:"type:varchar(191);not null;uniqueIndex:uniq_translation;index:idx_translation_lookup"`
	// Field is the attribute name on the owning entity (e.g. "name").
	Field string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_translation"`
	// ForeignKey is the string form of the owning record's identifier. The
	// owning record is referenced by value only; no FK constraint exists.
	ForeignKey string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_translation;index:idx_translation_lookup"`
	// Content is the translated text. Empty content is a valid translation.
	Content string `gorm:"type:text"`
}

// TableName keeps the table name compatible with the legacy schema.
func (Translation) TableName() string {
	return "ext_translations"
}
