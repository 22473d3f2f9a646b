package application

import (
	"transfer-simulator/domain/constants"
	"transfer-simulator/utils/vietqr"
)

// Scan decodes a raw QR payload and, when valid, restarts the session and
// triggers the bill lookup for the decoded payee account. A scan always
// wins over whatever transaction was in progress.
func (us *SimulatorApplication) Scan(payload string) SessionView {
	decoded := vietqr.Decode(payload)

	us.mu.Lock()
	defer us.mu.Unlock()

	if !decoded.IsValid {
		us.session.FailDecode(constants.MsgInvalidQr)
		return us.viewLocked()
	}

	seq := us.session.Restart(&decoded)
	customerAcc := decoded.Consumer.BankNumber
	us.IPool.Submit(func() {
		us.resolveBill(seq, customerAcc)
	})

	return us.viewLocked()
}

// ScanError handles a failure reported by the capture widget itself, which
// gets the same treatment as a malformed payload.
func (us *SimulatorApplication) ScanError(message string) SessionView {
	us.mu.Lock()
	defer us.mu.Unlock()

	if message == "" {
		message = constants.MsgInvalidQr
	}
	us.session.FailDecode(message)
	return us.viewLocked()
}
