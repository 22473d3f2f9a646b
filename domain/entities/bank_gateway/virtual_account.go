package entities

import (
	"transfer-simulator/domain/constants"
)

type GetBillRequest struct {
	CustomerAcc string `json:"customerAcc"`
	Checksum    string `json:"checksum"`
}

type GetBillResponse struct {
	Code         constants.GwCode `json:"code"`
	Message      string           `json:"message,omitempty"`
	Amount       int64            `json:"amount,omitempty"`
	BillNumber   string           `json:"billNumber,omitempty"`
	CustomerName string           `json:"customerName,omitempty"`
}

type PayBillRequest struct {
	TransId     string `json:"transId"`
	CustomerAcc string `json:"customerAcc"`
	Amount      int64  `json:"amount"`
	BillNumber  string `json:"billNumber"`
	Remark      string `json:"remark"`
	FromBank    string `json:"fromBank"`
	FromAcc     string `json:"fromAcc"`
	FromAccName string `json:"fromAccName"`
	Checksum    string `json:"checksum"`
}

type PayBillResponse struct {
	Code    constants.GwCode `json:"code"`
	Message string           `json:"message,omitempty"`
}
