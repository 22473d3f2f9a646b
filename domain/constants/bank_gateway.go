package constants

const (
	SUCCESS_ERR_CODE = "000"
)

// GwCode is the response code convention of the 3rd-party VA gateway.
// "000" is the only success value, everything else is a rejection.
type GwCode string

func (code GwCode) IsSuccess() bool {
	return string(code) == SUCCESS_ERR_CODE
}

func (code GwCode) IsFail() bool {
	return !code.IsSuccess()
}
