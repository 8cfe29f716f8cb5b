package enum

// ProductStatus is the availability state of a catalog product.
type ProductStatus string

const (
	ProductStatusAvailable    ProductStatus = "available"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusComingSoon   ProductStatus = "coming_soon"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)
