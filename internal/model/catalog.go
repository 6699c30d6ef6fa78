package model

type ProductUnit struct {
	UnitID   int64  `gorm:"column:unit_id;primaryKey;autoIncrement" json:"unit_id"`
	UnitName string `gorm:"column:unit_name;type:varchar(100);uniqueIndex;not null" json:"unit_name"`
}

func (ProductUnit) TableName() string {
	return TableProductUnit
}

func (m ProductUnit) Key() int64 {
	return m.UnitID
}

type ProductCategory struct {
	CategoryID   int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	CategoryName string `gorm:"column:category_name;type:varchar(100);uniqueIndex;not null" json:"category_name"`
}

func (ProductCategory) TableName() string {
	return TableProductCategory
}

func (m ProductCategory) Key() int64 {
	return m.CategoryID
}
