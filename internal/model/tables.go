package model

// Table names of the back-office schema.
const (
	TableProductUnit     = "tblproductunit"
	TableProductCategory = "tblproductcategory"
	TableUser            = "tbluser"
	TableSupplier        = "tblsupplier"
	TableCustomer        = "tblcustomer"
	TableProduct         = "tblproduct"
	TableInvoice         = "tblinvoice"
	TableSales           = "tblsales"
	TablePurchaseOrder   = "tblpurchaseorder"
	TableReceiveProduct  = "tblreceiveproduct"
)

// All returns every entity in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&ProductUnit{},
		&ProductCategory{},
		&User{},
		&Supplier{},
		&Customer{},
		&Product{},
		&Invoice{},
		&Sale{},
		&PurchaseOrder{},
		&ReceiveProduct{},
	}
}
