package commerce

// Operation is a named logical operation in the commerce operation set.
type Operation string

// The full caller-facing operation set.
const (
	OpLogin              Operation = "login"
	OpLogout             Operation = "logout"
	OpSignup             Operation = "signup"
	OpGetCustomer        Operation = "getCustomer"
	OpGetCart            Operation = "getCart"
	OpAddCartItem        Operation = "addCartItem"
	OpUpdateCartItem     Operation = "updateCartItem"
	OpRemoveCartItem     Operation = "removeCartItem"
	OpGetWishlist        Operation = "getWishlist"
	OpAddWishlistItem    Operation = "addWishlistItem"
	OpRemoveWishlistItem Operation = "removeWishlistItem"
	OpSearchProducts     Operation = "searchProducts"
	OpGetProduct         Operation = "getProduct"
	OpGetAllProducts     Operation = "getAllProducts"
)

// Class groups operations for staleness policy: every read in a class shares
// one TTL surface.
type Class string

const (
	ClassCustomer Class = "customer"
	ClassCart     Class = "cart"
	ClassWishlist Class = "wishlist"
	ClassCatalog  Class = "catalog"
)

var operationClasses = map[Operation]Class{
	OpLogin:              ClassCustomer,
	OpLogout:             ClassCustomer,
	OpSignup:             ClassCustomer,
	OpGetCustomer:        ClassCustomer,
	OpGetCart:            ClassCart,
	OpAddCartItem:        ClassCart,
	OpUpdateCartItem:     ClassCart,
	OpRemoveCartItem:     ClassCart,
	OpGetWishlist:        ClassWishlist,
	OpAddWishlistItem:    ClassWishlist,
	OpRemoveWishlistItem: ClassWishlist,
	OpSearchProducts:     ClassCatalog,
	OpGetProduct:         ClassCatalog,
	OpGetAllProducts:     ClassCatalog,
}

// ClassOf returns the staleness class of an operation.
func ClassOf(op Operation) Class {
	if c, ok := operationClasses[op]; ok {
		return c
	}
	return ClassCatalog
}

// IsMutation reports whether the operation changes backend state.
func (op Operation) IsMutation() bool {
	switch op {
	case OpLogin, OpLogout, OpSignup,
		OpAddCartItem, OpUpdateCartItem, OpRemoveCartItem,
		OpAddWishlistItem, OpRemoveWishlistItem:
		return true
	}
	return false
}

// String returns the operation name.
func (op Operation) String() string { return string(op) }

// LoginParams are the inputs to the login operation.
type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupParams are the inputs to the signup operation.
type SignupParams struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=7"`
}

// AddCartItemParams are the inputs to the addCartItem operation.
type AddCartItemParams struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// UpdateCartItemParams are the inputs to the updateCartItem operation.
// Quantity zero removes the item.
type UpdateCartItemParams struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// RemoveCartItemParams are the inputs to the removeCartItem operation.
type RemoveCartItemParams struct {
	ItemID string `json:"item_id" validate:"required"`
}

// AddWishlistItemParams are the inputs to the addWishlistItem operation.
type AddWishlistItemParams struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id" validate:"required"`
}

// RemoveWishlistItemParams are the inputs to the removeWishlistItem operation.
type RemoveWishlistItemParams struct {
	ItemID string `json:"item_id" validate:"required"`
}

// SearchProductsParams are the inputs to the searchProducts operation.
// CategoryID, BrandID and Sort are optional refinements.
type SearchProductsParams struct {
	Search     string `json:"search"`
	CategoryID string `json:"category_id,omitempty"`
	BrandID    string `json:"brand_id,omitempty"`
	Sort       string `json:"sort,omitempty" validate:"omitempty,oneof=latest trending price-asc price-desc"`
}

// GetProductParams are the inputs to the getProduct operation.
type GetProductParams struct {
	Slug string `json:"slug" validate:"required"`
}

// GetAllProductsParams are the inputs to the getAllProducts operation.
// Field selects the ordering facet the backend exposes for listings.
type GetAllProductsParams struct {
	Field string `json:"field" validate:"omitempty,oneof=new_arrivals trending featured"`
	Count int    `json:"count" validate:"gte=1,lte=250"`
}
