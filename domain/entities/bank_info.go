package entities

// Bank is one immutable entry of the supported-bank registry.
type Bank struct {
	SwiftCode string `json:"swift_code"`
	Bin       string `json:"bin"`
	ShortName string `json:"short_name"`
	BankCode  string `json:"bank_code"`
}
