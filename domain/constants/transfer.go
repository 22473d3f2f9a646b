package constants

// Amount bounds of a single transfer. Values outside the range are clamped
// at edit time, never rejected.
const (
	MinTransferAmount int64 = 0
	MaxTransferAmount int64 = 499000000
)

// DefaultSuggestedAmount is used when the gateway resolves a bill without
// a billed amount.
const DefaultSuggestedAmount int64 = 100000

// Fixed identity of the simulated originating account on payBill requests.
const (
	FromBank    = "Simulator"
	FromAcc     = "sml1403"
	FromAccName = "Simulator Account"
)

const DefaultEnv = "stg"
