package service

// Services bundles one accessor per resource.
type Services struct {
	Customers       CustomerService
	Categories      ProductCategoryService
	Units           ProductUnitService
	Products        ProductService
	Suppliers       SupplierService
	Invoices        InvoiceService
	Sales           SaleService
	PurchaseOrders  PurchaseOrderService
	ReceiveProducts ReceiveProductService
	Users           UserService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Customers:       NewCustomerService(deps),
		Categories:      NewProductCategoryService(deps),
		Units:           NewProductUnitService(deps),
		Products:        NewProductService(deps),
		Suppliers:       NewSupplierService(deps),
		Invoices:        NewInvoiceService(deps),
		Sales:           NewSaleService(deps),
		PurchaseOrders:  NewPurchaseOrderService(deps),
		ReceiveProducts: NewReceiveProductService(deps),
		Users:           NewUserService(deps),
	}
}
