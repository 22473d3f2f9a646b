package bank_service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"transfer-simulator/domain/constants"
	entities "transfer-simulator/domain/entities/bank_gateway"
	"transfer-simulator/utils/checksum"
	"transfer-simulator/utils/helpers"
)

const timeout = time.Minute*3 + time.Second*5

type repoImpl struct {
	Uri    string
	Signer checksum.Signer
	Logger *zap.Logger
}

func (r repoImpl) GetBill(customerAcc string) (response entities.GetBillResponse, err error) {
	request := entities.GetBillRequest{
		CustomerAcc: customerAcc,
		Checksum:    r.Signer.Checksum(customerAcc),
	}

	err = r.httpRequest(struct {
		Path     string
		Method   string
		Headers  map[string]string
		Body     interface{}
		Response interface{}
	}{
		Path:     "getBill",
		Method:   "POST",
		Headers:  nil,
		Body:     request,
		Response: &response,
	})

	if err != nil {
		return response, err
	}

	if !response.Code.IsSuccess() {
		if response.Message == "" {
			return response, errors.New(constants.MsgGenericError)
		}
		return response, errors.New(response.Message)
	}

	return response, err
}

func (r repoImpl) PayBill(data entities.PayBillRequest) (response entities.PayBillResponse, err error) {
	data.FromBank = constants.FromBank
	data.FromAcc = constants.FromAcc
	data.FromAccName = constants.FromAccName
	// the checksum binds the finalized identity fields and is always the
	// last field written, whatever the caller put there
	data.Checksum = r.Signer.Checksum(data.TransId + cast.ToString(data.Amount) + data.CustomerAcc + data.BillNumber)

	err = r.httpRequest(struct {
		Path     string
		Method   string
		Headers  map[string]string
		Body     interface{}
		Response interface{}
	}{
		Path:     "payBill",
		Method:   "POST",
		Headers:  nil,
		Body:     data,
		Response: &response,
	})

	if err != nil {
		return response, err
	}

	if !response.Code.IsSuccess() {
		if response.Message == "" {
			return response, errors.New(constants.MsgGenericError)
		}
		return response, errors.New(response.Message)
	}

	return response, err
}

func (r repoImpl) httpRequest(request struct {
	Path     string
	Method   string
	Headers  map[string]string
	Body     interface{}
	Response interface{}
}) (err error) {
	client := new(http.Client)

	client.Timeout = timeout

	traceId := helpers.GetUUId()

	jsonrequest, err := json.Marshal(request.Body)
	r.Logger.With(zapcore.Field{
		Key:    "trace_id",
		Type:   zapcore.StringType,
		String: traceId,
	}).With(zapcore.Field{
		Key:       "request",
		Type:      zapcore.StringType,
		String:    fmt.Sprintf("%v", string(jsonrequest)),
		Interface: nil,
	}).Info("bank_request")
	req, err := http.NewRequest(request.Method, fmt.Sprintf("%v%v", r.Uri, request.Path), bytes.NewReader(jsonrequest))

	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", `application/json`)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode == 500 {
		responseByte, _ := ioutil.ReadAll(resp.Body)
		defer resp.Body.Close()
		r.Logger.Error("BANK GATEWAY SERVER ERROR: " + string(responseByte))
		return errors.New("BANK GATEWAY SERVER ERROR")
	}

	responseByte, err := ioutil.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	r.Logger.With(zapcore.Field{
		Key:    "trace_id",
		Type:   zapcore.StringType,
		String: traceId,
	}).With(zapcore.Field{
		Key:       "uri",
		Type:      zapcore.StringType,
		String:    fmt.Sprintf("%v%v", r.Uri, request.Path),
		Interface: nil,
	}).With(
		zapcore.Field{
			Key:       "response",
			Type:      zapcore.StringType,
			String:    string(responseByte),
			Interface: nil,
		}).Info("http_request_data")

	err = json.Unmarshal(responseByte, request.Response)
	if err != nil {
		r.Logger.With(zap.Error(err)).Error("can not unmarshal response")
		return err
	}
	//Close Request
	defer func() {
		err = resp.Body.Close()
	}()

	return err
}

func NewRepoImpl(uri string, signer checksum.Signer, logger *zap.Logger) *repoImpl {
	return &repoImpl{
		Uri:    uri,
		Signer: signer,
		Logger: logger,
	}
}
