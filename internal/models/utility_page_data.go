package models

// UtilityPageData is everything loaded for a landlord's utility bill view
type UtilityPageData struct {
	Properties []Property     `json:"properties"`
	Leases     []Lease        `json:"leases"`
	Bills      []UtilityBill  `json:"bills"`
	Charges    []TenantCharge `json:"charges"`
	Stats      BillStats      `json:"stats"`
}

// FilterOptions lists the choices available to a bill filter
type FilterOptions struct {
	Properties   []Property `json:"properties"`
	Leases       []Lease    `json:"leases"`
	UtilityTypes []string   `json:"utility_types"`
}
