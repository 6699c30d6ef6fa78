package model

type Invoice struct {
	InvoiceID         int64       `gorm:"column:invoice_id;primaryKey;autoIncrement" json:"invoice_id"`
	CustomerID        int64       `gorm:"column:customer_id;index;not null" json:"customer_id"`
	PaymentType       PaymentType `gorm:"column:payment_type;not null" json:"payment_type"`
	TotalAmount       float64     `gorm:"column:total_amount;not null" json:"total_amount"`
	AmountTendered    float64     `gorm:"column:amount_tendered;not null" json:"amount_tendered"`
	BankAccountName   *string     `gorm:"column:bank_account_name;type:varchar(255)" json:"bank_account_name"`
	BankAccountNumber *string     `gorm:"column:bank_account_number;type:varchar(100)" json:"bank_account_number"`
	DateRecorded      Date        `gorm:"column:date_recorded;not null" json:"date_recorded"`
	UserID            int64       `gorm:"column:user_id;index;not null" json:"user_id"`
}

func (Invoice) TableName() string {
	return TableInvoice
}

func (m Invoice) Key() int64 {
	return m.InvoiceID
}

type InvoiceView struct {
	Invoice
	CustomerName *string `gorm:"column:customer_name" json:"customer_name"`
	CreatedBy    *string `gorm:"column:created_by" json:"created_by"`
}

// Sale is one line item of an invoice.
type Sale struct {
	SalesID   int64   `gorm:"column:sales_id;primaryKey;autoIncrement" json:"sales_id"`
	InvoiceID int64   `gorm:"column:invoice_id;index;not null" json:"invoice_id"`
	ProductID int64   `gorm:"column:product_id;index;not null" json:"product_id"`
	Quantity  float64 `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	SubTotal  float64 `gorm:"column:sub_total;not null" json:"sub_total"`
}

func (Sale) TableName() string {
	return TableSales
}

func (m Sale) Key() int64 {
	return m.SalesID
}

type SaleView struct {
	Sale
	CustomerID   *int64       `gorm:"column:customer_id" json:"customer_id"`
	PaymentType  *PaymentType `gorm:"column:payment_type" json:"payment_type"`
	InvoiceTotal *float64     `gorm:"column:invoice_total" json:"invoice_total"`
	ProductName  *string      `gorm:"column:product_name" json:"product_name"`
}
