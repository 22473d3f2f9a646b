package application

import (
	"fmt"

	"github.com/leekchan/accounting"

	"transfer-simulator/domain/constants"
	"transfer-simulator/domain/entities"
)

// SessionView is the read model handed to the transport layer. The confirm
// affordance is enabled only while the session is actionable.
type SessionView struct {
	Phase          entities.SessionPhase `json:"phase"`
	BankName       string                `json:"bankName,omitempty"`
	BankNumber     string                `json:"bankNumber,omitempty"`
	CustomerName   string                `json:"customerName,omitempty"`
	Purpose        string                `json:"purpose,omitempty"`
	Amount         int64                 `json:"amount"`
	AmountDisplay  string                `json:"amountDisplay,omitempty"`
	AmountHint     string                `json:"amountHint,omitempty"`
	QrErrorMessage string                `json:"qrErrorMessage,omitempty"`
	Notice         *entities.Notice      `json:"notice,omitempty"`
	SubmitEnabled  bool                  `json:"submitEnabled"`
}

func (us *SimulatorApplication) Session() SessionView {
	us.mu.Lock()
	defer us.mu.Unlock()
	return us.viewLocked()
}

func (us *SimulatorApplication) viewLocked() SessionView {
	sess := us.session

	view := SessionView{
		Phase:          sess.Phase,
		Amount:         sess.Amount,
		AmountHint:     sess.AmountHint,
		QrErrorMessage: sess.QrErrorMessage,
		Notice:         sess.Notice,
		SubmitEnabled:  sess.Phase == entities.PhaseActionable,
	}

	if sess.Intent != nil {
		view.BankNumber = sess.Intent.Consumer.BankNumber
		view.Purpose = sess.Intent.AdditionalData.Purpose
		view.CustomerName = sess.VirtualAccount.CustomerName

		if bank, ok := us.BankRegistry.Resolve(sess.Intent.Consumer.BankBin); ok {
			view.BankName = bank.ShortName
		} else {
			view.BankName = constants.MsgBankNotSupported
		}

		ac := accounting.DefaultAccounting(" ", 0)
		ac.Thousand = "."
		view.AmountDisplay = fmt.Sprint(ac.FormatMoney(sess.Amount)) + " VND"
	}

	return view
}
