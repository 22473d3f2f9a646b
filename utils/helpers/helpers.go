package helpers

import (
	"fmt"

	"github.com/jakehl/goid"

	"transfer-simulator/domain/constants"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

// ClampAmount forces a transfer amount into the allowed range. Idempotent.
func ClampAmount(value int64) int64 {
	if value > constants.MaxTransferAmount {
		return constants.MaxTransferAmount
	}
	if value < constants.MinTransferAmount {
		return constants.MinTransferAmount
	}
	return value
}
