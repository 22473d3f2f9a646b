package repositories

import (
	"transfer-simulator/domain/entities"
	eBankGw "transfer-simulator/domain/entities/bank_gateway"
)

// BankRegistry resolves a bank identification number into a transfer-capable
// bank profile. A miss means the bank is not supported and must degrade to
// display-only handling.
type BankRegistry interface {
	Resolve(bin string) (entities.Bank, bool)
}

type BankServiceRepository interface {
	GetBill(customerAcc string) (eBankGw.GetBillResponse, error)
	PayBill(data eBankGw.PayBillRequest) (eBankGw.PayBillResponse, error)
}
