package entities

// ShippingMethod is a mode of transport (air, sea, express...).
type ShippingMethod struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
