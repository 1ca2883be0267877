package models

// SalesChannel enumerates the distribution routes a sale can occur through.
type SalesChannel struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;not null;uniqueIndex"`
	IsActive bool   `gorm:"column:is_active;not null;default:true"`
}
