package banks

import (
	"transfer-simulator/domain/entities"
)

// ListSupportBanks is the static set of transfer-capable banks. A single
// BIDV profile today.
var ListSupportBanks = []entities.Bank{
	{
		SwiftCode: "BIDVVNVX",
		Bin:       "970418",
		ShortName: "BIDV",
		BankCode:  "bidv",
	},
}

type registryImpl struct {
	byBin map[string]entities.Bank
}

func NewRegistryImpl(list []entities.Bank) *registryImpl {
	byBin := make(map[string]entities.Bank, len(list))
	for _, bank := range list {
		byBin[bank.Bin] = bank
	}
	return &registryImpl{byBin: byBin}
}

func (r registryImpl) Resolve(bin string) (entities.Bank, bool) {
	bank, ok := r.byBin[bin]
	return bank, ok
}
