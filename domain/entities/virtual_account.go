package entities

// VirtualAccountData mirrors the bill the gateway resolved for the payee
// account. Empty until a lookup succeeds.
type VirtualAccountData struct {
	CustomerName    string `json:"customerName,omitempty"`
	SuggestedAmount int64  `json:"amount,omitempty"`
	BillNumber      string `json:"billNumber,omitempty"`
}
