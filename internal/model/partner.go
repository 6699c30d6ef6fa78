package model

type Supplier struct {
	SupplierID    int64   `gorm:"column:supplier_id;primaryKey;autoIncrement" json:"supplier_id"`
	SupplierCode  string  `gorm:"column:supplier_code;type:varchar(50);uniqueIndex;not null" json:"supplier_code"`
	SupplierName  string  `gorm:"column:supplier_name;type:varchar(255);not null" json:"supplier_name"`
	Contact       string  `gorm:"column:contact;type:varchar(50)" json:"contact"`
	Address       string  `gorm:"column:address;type:text" json:"address"`
	Email         *string `gorm:"column:email;type:varchar(255)" json:"email"`
	ContactPerson *string `gorm:"column:contact_person;type:varchar(255)" json:"contact_person"`
	BankName      *string `gorm:"column:bank_name;type:varchar(255)" json:"bank_name"`
	BankNumber    *string `gorm:"column:bank_number;type:varchar(100)" json:"bank_number"`
}

func (Supplier) TableName() string {
	return TableSupplier
}

func (m Supplier) Key() int64 {
	return m.SupplierID
}

type Customer struct {
	CustomerID   int64  `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	CustomerCode string `gorm:"column:customer_code;type:varchar(50);uniqueIndex;not null" json:"customer_code"`
	CustomerName string `gorm:"column:customer_name;type:varchar(255);not null" json:"customer_name"`
	Contact      string `gorm:"column:contact;type:varchar(50)" json:"contact"`
	Address      string `gorm:"column:address;type:text" json:"address"`
}

func (Customer) TableName() string {
	return TableCustomer
}

func (m Customer) Key() int64 {
	return m.CustomerID
}
