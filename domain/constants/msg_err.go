package constants

const (
	MsgInvalidQr        = "QR Code không hợp lệ"
	MsgBankNotSupported = "Không hỗ trợ"
	MsgInvalidAmount    = "Số tiền không hợp lệ"
	MsgTransferSuccess  = "Chuyển tiền thành công"
	MsgTransferFailed   = "Chuyển tiền thất bại. Lý do: "
	MsgGetBillFailed    = "Lấy thông tin tài khoản thất bại. Lý do: "
	MsgGenericError     = "Đã có lỗi xảy ra , vui lòng thử lại sau"
)

const (
	SERVICE_BANKGW_ERROR = "[SERVICE_BANKGW_ERROR].error "
)
