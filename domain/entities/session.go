package entities

import (
	"errors"

	"transfer-simulator/domain/constants"
	"transfer-simulator/utils/vietqr"
)

type SessionPhase string

const (
	PhaseIdle             SessionPhase = "IDLE"
	PhaseDecoding         SessionPhase = "DECODING"
	PhaseAwaitingBillInfo SessionPhase = "AWAITING_BILL_INFO"
	PhaseActionable       SessionPhase = "ACTIONABLE"
	PhaseSubmitting       SessionPhase = "SUBMITTING"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a one-shot user-facing notification attached to the session.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

var (
	ErrNotAwaitingBillInfo = errors.New("no bill lookup in flight")
	ErrNotActionable       = errors.New("no actionable transaction")
)

// Session is the in-memory record coordinating one logical transaction at a
// time. Callers serialize access; Seq tags the transaction so responses of
// an overwritten scan can be recognized as stale and dropped.
type Session struct {
	Phase          SessionPhase
	Intent         *vietqr.PaymentIntent
	QrErrorMessage string
	Amount         int64
	AmountHint     string
	VirtualAccount VirtualAccountData
	Notice         *Notice
	Seq            uint64
}

func NewSession() *Session {
	return &Session{
		Phase:  PhaseIdle,
		Amount: constants.DefaultSuggestedAmount,
	}
}

// FailDecode handles both a malformed payload and a scanner-reported error:
// the message is shown inline and any active transaction is discarded.
func (s *Session) FailDecode(message string) {
	s.Seq++
	s.Phase = PhaseIdle
	s.Intent = nil
	s.QrErrorMessage = message
	s.AmountHint = ""
	s.VirtualAccount = VirtualAccountData{}
	s.Notice = nil
}

// Restart begins a new transaction from a freshly decoded intent. A new scan
// always wins, whatever phase the previous transaction was in. The returned
// sequence number must accompany every async call made on behalf of this
// transaction.
func (s *Session) Restart(intent *vietqr.PaymentIntent) uint64 {
	s.Seq++
	s.Phase = PhaseAwaitingBillInfo
	s.Intent = intent
	s.QrErrorMessage = ""
	s.AmountHint = ""
	s.VirtualAccount = VirtualAccountData{}
	s.Notice = nil
	return s.Seq
}

// AcceptBill records a resolved bill and opens the session for editing and
// submission. The suggested amount pre-fills the editable amount.
func (s *Session) AcceptBill(va VirtualAccountData, suggestedAmount int64) error {
	if s.Phase != PhaseAwaitingBillInfo || s.Intent == nil {
		return ErrNotAwaitingBillInfo
	}
	s.Phase = PhaseActionable
	s.VirtualAccount = va
	s.Amount = suggestedAmount
	return nil
}

// RejectBill ends the transaction after a failed bill lookup: the bill data
// is cleared and the session is no longer actionable.
func (s *Session) RejectBill(message string) {
	s.Phase = PhaseIdle
	s.Intent = nil
	s.VirtualAccount = VirtualAccountData{}
	s.Notice = &Notice{Level: NoticeError, Message: message}
}

// SetAmount applies an already-clamped amount. Only meaningful while the
// session is actionable; edits in any other phase are ignored.
func (s *Session) SetAmount(amount int64, hint string) {
	if s.Phase != PhaseActionable {
		return
	}
	s.Amount = amount
	s.AmountHint = hint
}

func (s *Session) BeginSubmission() error {
	if s.Phase != PhaseActionable || s.Intent == nil {
		return ErrNotActionable
	}
	s.Phase = PhaseSubmitting
	s.Notice = nil
	return nil
}

// CompleteSubmission resets the session to idle after the gateway accepted
// the transfer; a new scan is required before the next submission.
func (s *Session) CompleteSubmission(message string) {
	s.Seq++
	s.Phase = PhaseIdle
	s.Intent = nil
	s.QrErrorMessage = ""
	s.AmountHint = ""
	s.Amount = constants.DefaultSuggestedAmount
	s.VirtualAccount = VirtualAccountData{}
	s.Notice = &Notice{Level: NoticeSuccess, Message: message}
}

// FailSubmission returns to the actionable phase so the caller may retry
// manually. Nothing is retried automatically.
func (s *Session) FailSubmission(message string) {
	s.Phase = PhaseActionable
	s.Notice = &Notice{Level: NoticeError, Message: message}
}
