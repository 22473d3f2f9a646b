package application

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transfer-simulator/domain/constants"
	"transfer-simulator/domain/entities"
	eBankGw "transfer-simulator/domain/entities/bank_gateway"
	"transfer-simulator/utils/checksum"
	"transfer-simulator/utils/configs"
	"transfer-simulator/utils/gpooling"
	"transfer-simulator/utils/vietqr"
)

const testSecret = "test-secret"

func emv(id, value string) string {
	return fmt.Sprintf("%v%02d%v", id, len(value), value)
}

func qrPayload(bankBin, bankNumber, purpose string) string {
	provider := emv("00", vietqr.GuidVietQr) +
		emv("01", emv("00", bankBin)+emv("01", bankNumber)) +
		emv("02", "QRIBFTTA")
	base := emv("00", "01") + emv("01", "11") + emv("38", provider) +
		emv("53", "704") + emv("58", "VN")
	if purpose != "" {
		base += emv("62", emv("08", purpose))
	}
	base += "6304"
	return base + vietqr.Checksum(base)
}

// gatewayStub stands in for the virtual account gateway. Handlers may be
// replaced per test; every decoded request is recorded.
type gatewayStub struct {
	mu           sync.Mutex
	getBillCalls []eBankGw.GetBillRequest
	payBillCalls []eBankGw.PayBillRequest

	getBill func(eBankGw.GetBillRequest) eBankGw.GetBillResponse
	payBill func(eBankGw.PayBillRequest) eBankGw.PayBillResponse
}

func newGatewayStub() *gatewayStub {
	return &gatewayStub{
		getBill: func(eBankGw.GetBillRequest) eBankGw.GetBillResponse {
			return eBankGw.GetBillResponse{
				Code:         constants.SUCCESS_ERR_CODE,
				Amount:       250000,
				BillNumber:   "BILL42",
				CustomerName: "NGUYEN VAN A",
			}
		},
		payBill: func(eBankGw.PayBillRequest) eBankGw.PayBillResponse {
			return eBankGw.PayBillResponse{Code: constants.SUCCESS_ERR_CODE}
		},
	}
}

func (g *gatewayStub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.URL.Path {
	case "/getBill":
		var body eBankGw.GetBillRequest
		json.NewDecoder(req.Body).Decode(&body)
		g.mu.Lock()
		g.getBillCalls = append(g.getBillCalls, body)
		handler := g.getBill
		g.mu.Unlock()
		json.NewEncoder(w).Encode(handler(body))
	case "/payBill":
		var body eBankGw.PayBillRequest
		json.NewDecoder(req.Body).Decode(&body)
		g.mu.Lock()
		g.payBillCalls = append(g.payBillCalls, body)
		handler := g.payBill
		g.mu.Unlock()
		json.NewEncoder(w).Encode(handler(body))
	default:
		http.NotFound(w, req)
	}
}

func (g *gatewayStub) getBillCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.getBillCalls)
}

func (g *gatewayStub) lastPayBill(t *testing.T) eBankGw.PayBillRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.payBillCalls)
	return g.payBillCalls[len(g.payBillCalls)-1]
}

func newTestApp(t *testing.T, gw *gatewayStub) *SimulatorApplication {
	server := httptest.NewServer(gw)
	t.Cleanup(server.Close)

	pool, err := gpooling.NewPooling(8)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	config := &configs.Config{
		BankGwURI:   server.URL + "/",
		SecretCode:  testSecret,
		MaxPoolSize: 8,
	}
	return NewSimulatorApplication(config, zap.NewNop(), pool)
}

func eventuallyPhase(t *testing.T, app *SimulatorApplication, phase entities.SessionPhase) SessionView {
	var view SessionView
	require.Eventually(t, func() bool {
		view = app.Session()
		return view.Phase == phase
	}, 2*time.Second, 10*time.Millisecond)
	return view
}

func scanActionable(t *testing.T, app *SimulatorApplication) SessionView {
	view := app.Scan(qrPayload("970418", "123456789", "Rent"))
	assert.Equal(t, entities.PhaseAwaitingBillInfo, view.Phase)
	return eventuallyPhase(t, app, entities.PhaseActionable)
}

func TestScanResolvesBill(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)

	view := scanActionable(t, app)

	assert.Equal(t, "BIDV", view.BankName)
	assert.Equal(t, "123456789", view.BankNumber)
	assert.Equal(t, "NGUYEN VAN A", view.CustomerName)
	assert.Equal(t, "Rent", view.Purpose)
	assert.Equal(t, int64(250000), view.Amount)
	assert.Contains(t, view.AmountDisplay, "250.000")
	assert.True(t, view.SubmitEnabled)

	signer := checksum.NewSigner(testSecret)
	require.Equal(t, 1, gw.getBillCount())
	assert.Equal(t, "123456789", gw.getBillCalls[0].CustomerAcc)
	assert.Equal(t, signer.Checksum("123456789"), gw.getBillCalls[0].Checksum)
}

func TestScanInvalidPayload(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)

	view := app.Scan("hello world")

	assert.Equal(t, entities.PhaseIdle, view.Phase)
	assert.Equal(t, constants.MsgInvalidQr, view.QrErrorMessage)
	assert.False(t, view.SubmitEnabled)
	assert.Equal(t, 0, gw.getBillCount())

	_, err := app.Confirm()
	assert.Equal(t, entities.ErrNotActionable, err)
}

func TestScanErrorReported(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)

	view := app.ScanError("camera unavailable")

	assert.Equal(t, entities.PhaseIdle, view.Phase)
	assert.Equal(t, "camera unavailable", view.QrErrorMessage)

	view = app.ScanError("")
	assert.Equal(t, constants.MsgInvalidQr, view.QrErrorMessage)
}

func TestScanUnsupportedBankDisplay(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)

	app.Scan(qrPayload("999999", "5550001", ""))
	view := eventuallyPhase(t, app, entities.PhaseActionable)

	assert.Equal(t, constants.MsgBankNotSupported, view.BankName)
	assert.Equal(t, "5550001", view.BankNumber)
}

func TestBillLookupRejected(t *testing.T) {
	gw := newGatewayStub()
	gw.getBill = func(eBankGw.GetBillRequest) eBankGw.GetBillResponse {
		return eBankGw.GetBillResponse{Code: "001", Message: "account not found"}
	}
	app := newTestApp(t, gw)

	app.Scan(qrPayload("970418", "123456789", ""))

	var view SessionView
	require.Eventually(t, func() bool {
		view = app.Session()
		return view.Notice != nil
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, entities.PhaseIdle, view.Phase)
	assert.Equal(t, entities.NoticeError, view.Notice.Level)
	assert.Equal(t, constants.MsgGetBillFailed+"account not found", view.Notice.Message)
	assert.False(t, view.SubmitEnabled)
}

func TestDefaultSuggestedAmount(t *testing.T) {
	gw := newGatewayStub()
	gw.getBill = func(eBankGw.GetBillRequest) eBankGw.GetBillResponse {
		return eBankGw.GetBillResponse{Code: constants.SUCCESS_ERR_CODE, CustomerName: "NGUYEN VAN A"}
	}
	app := newTestApp(t, gw)

	app.Scan(qrPayload("970418", "123456789", ""))
	view := eventuallyPhase(t, app, entities.PhaseActionable)

	assert.Equal(t, constants.DefaultSuggestedAmount, view.Amount)
}

func TestSetAmountClamped(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)
	scanActionable(t, app)

	view := app.SetAmount(600000000)
	assert.Equal(t, constants.MaxTransferAmount, view.Amount)
	assert.Equal(t, constants.MsgInvalidAmount, view.AmountHint)

	view = app.SetAmount(300000)
	assert.Equal(t, int64(300000), view.Amount)
	assert.Empty(t, view.AmountHint)
}

func TestSetAmountIgnoredWhenIdle(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)

	view := app.SetAmount(300000)

	assert.Equal(t, entities.PhaseIdle, view.Phase)
	assert.Equal(t, constants.DefaultSuggestedAmount, view.Amount)
}

func TestConfirmSuccess(t *testing.T) {
	gw := newGatewayStub()
	app := newTestApp(t, gw)
	scanActionable(t, app)

	view, err := app.Confirm()
	require.NoError(t, err)
	assert.Equal(t, entities.PhaseSubmitting, view.Phase)

	view = eventuallyPhase(t, app, entities.PhaseIdle)
	require.NotNil(t, view.Notice)
	assert.Equal(t, entities.NoticeSuccess, view.Notice.Level)
	assert.Equal(t, constants.MsgTransferSuccess+" 250,000 VNĐ", view.Notice.Message)
	assert.Equal(t, constants.DefaultSuggestedAmount, view.Amount)

	request := gw.lastPayBill(t)
	assert.Equal(t, "123456789", request.CustomerAcc)
	assert.Equal(t, int64(250000), request.Amount)
	assert.Equal(t, "BILL42", request.BillNumber)
	assert.Equal(t, "Rent", request.Remark)
	assert.Equal(t, constants.FromBank, request.FromBank)
	assert.Equal(t, constants.FromAcc, request.FromAcc)
	assert.Equal(t, constants.FromAccName, request.FromAccName)

	signer := checksum.NewSigner(testSecret)
	assert.Equal(t, signer.Checksum(request.TransId+"250000"+"123456789"+"BILL42"), request.Checksum)
}

func TestConfirmRejectedKeepsSessionActionable(t *testing.T) {
	gw := newGatewayStub()
	gw.payBill = func(eBankGw.PayBillRequest) eBankGw.PayBillResponse {
		return eBankGw.PayBillResponse{Code: "002", Message: "insufficient funds"}
	}
	app := newTestApp(t, gw)
	scanActionable(t, app)

	_, err := app.Confirm()
	require.NoError(t, err)

	view := eventuallyPhase(t, app, entities.PhaseActionable)
	require.NotNil(t, view.Notice)
	assert.Equal(t, entities.NoticeError, view.Notice.Level)
	assert.Equal(t, constants.MsgTransferFailed+"insufficient funds", view.Notice.Message)
	assert.True(t, view.SubmitEnabled)
}

func TestConfirmGeneratesBillNumberWhenMissing(t *testing.T) {
	gw := newGatewayStub()
	gw.getBill = func(eBankGw.GetBillRequest) eBankGw.GetBillResponse {
		return eBankGw.GetBillResponse{Code: constants.SUCCESS_ERR_CODE, Amount: 250000, CustomerName: "NGUYEN VAN A"}
	}
	app := newTestApp(t, gw)
	scanActionable(t, app)

	_, err := app.Confirm()
	require.NoError(t, err)
	eventuallyPhase(t, app, entities.PhaseIdle)

	request := gw.lastPayBill(t)
	assert.NotEmpty(t, request.BillNumber)
}

func TestStaleBillResponseDropped(t *testing.T) {
	release := make(chan struct{})
	gw := newGatewayStub()
	gw.getBill = func(request eBankGw.GetBillRequest) eBankGw.GetBillResponse {
		if request.CustomerAcc == "111111111" {
			<-release
			return eBankGw.GetBillResponse{Code: constants.SUCCESS_ERR_CODE, Amount: 999, CustomerName: "STALE"}
		}
		return eBankGw.GetBillResponse{Code: constants.SUCCESS_ERR_CODE, Amount: 250000, CustomerName: "NGUYEN VAN A"}
	}
	app := newTestApp(t, gw)

	app.Scan(qrPayload("970418", "111111111", ""))
	app.Scan(qrPayload("970418", "123456789", ""))

	view := eventuallyPhase(t, app, entities.PhaseActionable)
	assert.Equal(t, "123456789", view.BankNumber)

	close(release)
	require.Eventually(t, func() bool {
		return gw.getBillCount() == 2
	}, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	view = app.Session()
	assert.Equal(t, "123456789", view.BankNumber)
	assert.Equal(t, "NGUYEN VAN A", view.CustomerName)
	assert.Equal(t, int64(250000), view.Amount)
}

func TestScanDuringSubmissionWins(t *testing.T) {
	release := make(chan struct{})
	gw := newGatewayStub()
	gw.payBill = func(eBankGw.PayBillRequest) eBankGw.PayBillResponse {
		<-release
		return eBankGw.PayBillResponse{Code: constants.SUCCESS_ERR_CODE}
	}
	app := newTestApp(t, gw)
	scanActionable(t, app)

	_, err := app.Confirm()
	require.NoError(t, err)

	app.Scan(qrPayload("970418", "123456789", "Rent"))
	view := eventuallyPhase(t, app, entities.PhaseActionable)

	close(release)
	time.Sleep(50 * time.Millisecond)

	view = app.Session()
	assert.Equal(t, entities.PhaseActionable, view.Phase)
	assert.Nil(t, view.Notice)

	if !strings.Contains(view.BankNumber, "123456789") {
		t.Errorf("session lost its payee: %v", view.BankNumber)
	}
}
