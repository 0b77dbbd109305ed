package entities

// Currency is a reference currency (e.g. USD, NGN).
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
