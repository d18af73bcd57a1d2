package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:200;not null" json:"name"`
	Slug     string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Products []Product `gorm:"many2many:product_categories" json:"-"`
}
