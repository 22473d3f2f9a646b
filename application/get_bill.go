package application

import (
	"go.uber.org/zap"

	"transfer-simulator/domain/constants"
	"transfer-simulator/domain/entities"
)

// resolveBill runs on the pool. The sequence number pins the response to the
// transaction that issued it: a response arriving after a newer scan is
// dropped instead of overwriting the newer state.
func (us *SimulatorApplication) resolveBill(seq uint64, customerAcc string) {
	response, err := us.BankServiceRepository.GetBill(customerAcc)

	us.mu.Lock()
	defer us.mu.Unlock()

	if us.session.Seq != seq {
		us.Logger.Warn("stale getBill response dropped")
		return
	}

	if err != nil {
		us.session.RejectBill(constants.MsgGetBillFailed + err.Error())
		return
	}

	suggested := response.Amount
	if suggested <= 0 {
		suggested = constants.DefaultSuggestedAmount
	}

	err = us.session.AcceptBill(entities.VirtualAccountData{
		CustomerName:    response.CustomerName,
		SuggestedAmount: response.Amount,
		BillNumber:      response.BillNumber,
	}, suggested)
	if err != nil {
		us.Logger.With(zap.Error(err)).Error(constants.SERVICE_BANKGW_ERROR)
	}
}
