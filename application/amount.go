package application

import (
	"transfer-simulator/domain/constants"
	"transfer-simulator/utils/helpers"
)

// SetAmount applies a user edit to the transfer amount, clamped into
// [MinTransferAmount, MaxTransferAmount]. An out-of-range input also raises
// the validation hint. The edit never reaches the network layer.
func (us *SimulatorApplication) SetAmount(value int64) SessionView {
	us.mu.Lock()
	defer us.mu.Unlock()

	clamped := helpers.ClampAmount(value)
	hint := ""
	if clamped != value {
		hint = constants.MsgInvalidAmount
	}
	us.session.SetAmount(clamped, hint)
	return us.viewLocked()
}
