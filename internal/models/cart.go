package models

// CartLine is one product entry in the cart. ID is the server-assigned
// line id; until the first refetch after an optimistic add it holds a
// client-generated placeholder.
type CartLine struct {
	ID      string  `json:"_id"`
	Product Product `json:"product"`
	Count   int     `json:"count"`
	Price   float64 `json:"price"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Count)
}

// CartData is the server cart document mirrored on the client.
type CartData struct {
	ID         string     `json:"_id"`
	Owner      string     `json:"cartOwner"`
	Products   []CartLine `json:"products"`
	TotalPrice float64    `json:"totalCartPrice"`
	CreatedAt  string     `json:"createdAt,omitempty"`
	UpdatedAt  string     `json:"updatedAt,omitempty"`
}
