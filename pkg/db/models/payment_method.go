package models

// PaymentMethod enumerates how a sale was paid for.
type PaymentMethod struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;not null;uniqueIndex"`
	IsActive bool   `gorm:"column:is_active;not null;default:true"`
}
