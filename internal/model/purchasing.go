package model

// PurchaseOrderPending is the status of an order nobody has acted on yet.
const PurchaseOrderPending = "pending"

type PurchaseOrder struct {
	PurchaseOrderID int64   `gorm:"column:purchase_order_id;primaryKey;autoIncrement" json:"purchase_order_id"`
	ProductID       int64   `gorm:"column:product_id;index;not null" json:"product_id"`
	SupplierID      int64   `gorm:"column:supplier_id;index;not null" json:"supplier_id"`
	Quantity        float64 `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice       float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	SubTotal        float64 `gorm:"column:sub_total;not null" json:"sub_total"`
	OrderDate       Date    `gorm:"column:order_date;not null" json:"order_date"`
	UserID          int64   `gorm:"column:user_id;index;not null" json:"user_id"`
	Status          string  `gorm:"column:status;type:varchar(30);not null;default:pending" json:"status"`
}

func (PurchaseOrder) TableName() string {
	return TablePurchaseOrder
}

func (m PurchaseOrder) Key() int64 {
	return m.PurchaseOrderID
}

type PurchaseOrderView struct {
	PurchaseOrder
	SupplierName *string `gorm:"column:supplier_name" json:"supplier_name"`
	ProductName  *string `gorm:"column:product_name" json:"product_name"`
	OrderedBy    *string `gorm:"column:ordered_by" json:"ordered_by"`
}

// ReceiveProduct records goods arriving from a supplier, optionally against
// a purchase order.
type ReceiveProduct struct {
	ReceiveProductID int64   `gorm:"column:receive_product_id;primaryKey;autoIncrement" json:"receive_product_id"`
	ProductID        int64   `gorm:"column:product_id;index;not null" json:"product_id"`
	SupplierID       int64   `gorm:"column:supplier_id;index;not null" json:"supplier_id"`
	Quantity         float64 `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice        float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	SubTotal         float64 `gorm:"column:sub_total;not null" json:"sub_total"`
	ReceivedDate     Date    `gorm:"column:received_date;not null" json:"received_date"`
	UserID           int64   `gorm:"column:user_id;index;not null" json:"user_id"`
	PurchaseOrderID  *int64  `gorm:"column:purchase_order_id;index" json:"purchase_order_id"`
}

func (ReceiveProduct) TableName() string {
	return TableReceiveProduct
}

func (m ReceiveProduct) Key() int64 {
	return m.ReceiveProductID
}

type ReceiveProductView struct {
	ReceiveProduct
	SupplierName *string `gorm:"column:supplier_name" json:"supplier_name"`
	ProductName  *string `gorm:"column:product_name" json:"product_name"`
	ReceivedBy   *string `gorm:"column:received_by" json:"received_by"`
}
