package models

// CartItem est la projection renvoyée par GET /api/cart/list.
type CartItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
