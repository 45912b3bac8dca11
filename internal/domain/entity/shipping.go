// Package entity contains the core business objects of the project.
package entity

// ShippingInfo is the delivery address captured with an order. All fields
// except Note are required before an order can be placed; validation happens
// at the usecase boundary.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Note     string `json:"note,omitempty"`
}
