package entity

// Join table for Product<->Option, registered via SetupJoinTable so the
// ordering column survives AutoMigrate.
type ProductOption struct {
	ProductID uint `gorm:"primaryKey" json:"productId"`
	OptionID  uint `gorm:"primaryKey" json:"optionId"`
	SortOrder int  `json:"sortOrder"`
}
