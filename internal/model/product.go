package model

type Product struct {
	ProductID          int64   `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProduceCode        string  `gorm:"column:produce_code;type:varchar(50);uniqueIndex;not null" json:"produce_code"`
	ProductName        string  `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	UnitID             int64   `gorm:"column:unit_id;index;not null" json:"unit_id"`
	CategoryID         int64   `gorm:"column:category_id;index;not null" json:"category_id"`
	UnitInStock        float64 `gorm:"column:unit_in_stock;not null;default:0" json:"unit_in_stock"`
	UnitPrice          float64 `gorm:"column:unit_price;not null;default:0" json:"unit_price"`
	DiscountPercentage float64 `gorm:"column:discount_percentage;not null;default:0" json:"discount_percentage"`
	ReorderLevel       float64 `gorm:"column:reorder_level;not null;default:0" json:"reorder_level"`
	UserID             int64   `gorm:"column:user_id;index;not null" json:"user_id"`
}

func (Product) TableName() string {
	return TableProduct
}

func (m Product) Key() int64 {
	return m.ProductID
}

// ProductView is a product with the display names of the rows it references.
// The names are nil when the referenced row no longer exists.
type ProductView struct {
	Product
	Unit      *string `gorm:"column:unit" json:"unit"`
	Category  *string `gorm:"column:category" json:"category"`
	CreatedBy *string `gorm:"column:created_by" json:"created_by"`
}
