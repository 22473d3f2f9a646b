package application

import (
	"github.com/dustin/go-humanize"

	"transfer-simulator/domain/constants"
	eBankGw "transfer-simulator/domain/entities/bank_gateway"
	"transfer-simulator/utils/gen_ids"
)

// Confirm assembles the transfer request from the actionable session and
// submits it on the pool. The checksum is computed inside the gateway client
// once every other field is final.
func (us *SimulatorApplication) Confirm() (SessionView, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	sess := us.session
	if err := sess.BeginSubmission(); err != nil {
		return us.viewLocked(), err
	}

	request := eBankGw.PayBillRequest{
		TransId:     gen_ids.GetTransId(),
		CustomerAcc: sess.Intent.Consumer.BankNumber,
		Amount:      sess.Amount,
		BillNumber:  sess.VirtualAccount.BillNumber,
		Remark:      sess.Intent.AdditionalData.Purpose,
	}
	if request.BillNumber == "" {
		request.BillNumber = gen_ids.GetBillNumber()
	}

	seq := sess.Seq
	us.IPool.Submit(func() {
		us.submitTransfer(seq, request)
	})

	return us.viewLocked(), nil
}

func (us *SimulatorApplication) submitTransfer(seq uint64, request eBankGw.PayBillRequest) {
	_, err := us.BankServiceRepository.PayBill(request)

	us.mu.Lock()
	defer us.mu.Unlock()

	if us.session.Seq != seq {
		us.Logger.Warn("stale payBill response dropped")
		return
	}

	if err != nil {
		us.session.FailSubmission(constants.MsgTransferFailed + err.Error())
		return
	}

	message := constants.MsgTransferSuccess + " " + humanize.Comma(request.Amount) + " VNĐ"
	us.session.CompleteSubmission(message)
}
