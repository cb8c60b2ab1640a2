package models

// OrderUser is the abbreviated account document embedded in orders.
type OrderUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Order is a placed order as returned by the orders endpoints.
type Order struct {
	ID                string     `json:"_id"`
	User              OrderUser  `json:"user"`
	CartItems         []CartLine `json:"cartItems"`
	ShippingAddress   Address    `json:"shippingAddress"`
	TaxPrice          float64    `json:"taxPrice"`
	ShippingPrice     float64    `json:"shippingPrice"`
	TotalOrderPrice   float64    `json:"totalOrderPrice"`
	PaymentMethodType string     `json:"paymentMethodType"`
	IsPaid            bool       `json:"isPaid"`
	IsDelivered       bool       `json:"isDelivered"`
	PaidAt            string     `json:"paidAt,omitempty"`
	CreatedAt         string     `json:"createdAt,omitempty"`
}
