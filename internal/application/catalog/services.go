package catalog

// Services bundles every service module over one Requester
type Services struct {
	Books          *BookService
	Suppliers      *SupplierService
	Inventory      *InventoryService
	Specifications *BookSpecificationService
	SchoolSets     *SchoolSetService
	Uniforms       *UniformService
	Gifts          *GiftService
	Pricing        *PricingService
	ProductKinds   *ProductKindService
}

// NewServices creates all service modules
func NewServices(r Requester) *Services {
	return &Services{
		Books:          NewBookService(r),
		Suppliers:      NewSupplierService(r),
		Inventory:      NewInventoryService(r),
		Specifications: NewBookSpecificationService(r),
		SchoolSets:     NewSchoolSetService(r),
		Uniforms:       NewUniformService(r),
		Gifts:          NewGiftService(r),
		Pricing:        NewPricingService(r),
		ProductKinds:   NewProductKindService(r),
	}
}
