package vietqr

import (
	"fmt"
	"strconv"
	"strings"
)

// Root field ids of the EMVCo merchant-presented payload.
const (
	idVersion          = "00"
	idInitMethod       = "01"
	idCategory         = "52"
	idCurrency         = "53"
	idAmount           = "54"
	idTipAndFeeType    = "55"
	idTipAndFeeAmount  = "56"
	idTipAndFeePercent = "57"
	idNation           = "58"
	idAcquirerName     = "59"
	idCity             = "60"
	idZipCode          = "61"
	idAdditionalData   = "62"
	idCRC              = "63"
)

// Sub-ids of the provider block (root ids 26..51).
const (
	idProviderGuid     = "00"
	idProviderConsumer = "01"
	idProviderService  = "02"
)

// Sub-ids of the consumer block nested inside the provider block.
const (
	idConsumerBankBin    = "00"
	idConsumerBankNumber = "01"
)

// Sub-ids of the additional-data block (root id 62).
const (
	idBillNumber    = "01"
	idMobileNumber  = "02"
	idStore         = "03"
	idLoyaltyNumber = "04"
	idReference     = "05"
	idCustomerLabel = "06"
	idTerminal      = "07"
	idPurpose       = "08"
	idDataRequest   = "09"
)

// GuidVietQr is the NAPAS application id carried by VietQR transfer codes.
const GuidVietQr = "A000000727"

type Provider struct {
	FieldId string `json:"fieldId"`
	Guid    string `json:"guid"`
	Name    string `json:"name"`
	Service string `json:"service"`
}

type Consumer struct {
	BankBin    string `json:"bankBin"`
	BankNumber string `json:"bankNumber"`
}

type Acquirer struct {
	Name string `json:"name"`
	Id   string `json:"id"`
}

type AdditionalData struct {
	BillNumber    string `json:"billNumber"`
	MobileNumber  string `json:"mobileNumber"`
	Store         string `json:"store"`
	LoyaltyNumber string `json:"loyaltyNumber"`
	Reference     string `json:"reference"`
	CustomerLabel string `json:"customerLabel"`
	Terminal      string `json:"terminal"`
	DataRequest   string `json:"dataRequest"`
	Purpose       string `json:"purpose,omitempty"`
}

// PaymentIntent is the decoded form of a scanned VietQR payload. A decoded
// intent must only be acted upon when IsValid is true; every other field is
// display data.
type PaymentIntent struct {
	IsValid          bool           `json:"isValid"`
	Version          string         `json:"version"`
	InitMethod       string         `json:"initMethod"`
	Provider         Provider       `json:"provider"`
	Consumer         Consumer       `json:"consumer"`
	Category         string         `json:"category"`
	Currency         string         `json:"currency"`
	Amount           string         `json:"amount"`
	TipAndFeeType    string         `json:"tipAndFeeType"`
	TipAndFeeAmount  string         `json:"tipAndFeeAmount"`
	TipAndFeePercent string         `json:"tipAndFeePercent"`
	Nation           string         `json:"nation"`
	Acquirer         Acquirer       `json:"acquier"`
	City             string         `json:"city"`
	ZipCode          string         `json:"zipCode"`
	AdditionalData   AdditionalData `json:"additionalData"`
	CRC              string         `json:"crc"`
}

type field struct {
	id    string
	value string
}

// Decode parses a raw scanned string into a PaymentIntent. Malformed input
// never raises: the result simply carries IsValid=false.
func Decode(raw string) (intent PaymentIntent) {
	fields, err := parseTLV(raw)
	if err != nil || len(fields) == 0 {
		return intent
	}

	// the CRC field must close the payload, its digest covers everything
	// up to and including its own "6304" prefix
	last := fields[len(fields)-1]
	if last.id != idCRC || len(last.value) != 4 {
		return intent
	}
	intent.CRC = last.value
	if !strings.EqualFold(Checksum(raw[:len(raw)-4]), last.value) {
		return intent
	}

	for _, f := range fields {
		switch f.id {
		case idVersion:
			intent.Version = f.value
		case idInitMethod:
			intent.InitMethod = f.value
		case idCategory:
			intent.Category = f.value
		case idCurrency:
			intent.Currency = f.value
		case idAmount:
			intent.Amount = f.value
		case idTipAndFeeType:
			intent.TipAndFeeType = f.value
		case idTipAndFeeAmount:
			intent.TipAndFeeAmount = f.value
		case idTipAndFeePercent:
			intent.TipAndFeePercent = f.value
		case idNation:
			intent.Nation = f.value
		case idAcquirerName:
			intent.Acquirer.Name = f.value
		case idCity:
			intent.City = f.value
		case idZipCode:
			intent.ZipCode = f.value
		case idAdditionalData:
			if err := parseAdditionalData(f.value, &intent.AdditionalData); err != nil {
				return PaymentIntent{CRC: intent.CRC}
			}
		case idCRC:
		default:
			if isProviderField(f.id) {
				parseProvider(f, &intent)
			}
		}
	}

	intent.IsValid = intent.Version != "" &&
		intent.Consumer.BankBin != "" &&
		intent.Consumer.BankNumber != ""
	return intent
}

// isProviderField reports whether a root id belongs to the merchant account
// information range.
func isProviderField(id string) bool {
	n, err := strconv.Atoi(id)
	if err != nil {
		return false
	}
	return n >= 26 && n <= 51
}

func parseProvider(f field, intent *PaymentIntent) {
	sub, err := parseTLV(f.value)
	if err != nil {
		return
	}
	provider := Provider{FieldId: f.id}
	consumer := Consumer{}
	for _, s := range sub {
		switch s.id {
		case idProviderGuid:
			provider.Guid = s.value
		case idProviderService:
			provider.Service = s.value
		case idProviderConsumer:
			nested, err := parseTLV(s.value)
			if err != nil {
				return
			}
			for _, c := range nested {
				switch c.id {
				case idConsumerBankBin:
					consumer.BankBin = c.value
				case idConsumerBankNumber:
					consumer.BankNumber = c.value
				}
			}
		}
	}
	if provider.Guid == "" {
		return
	}
	if strings.EqualFold(provider.Guid, GuidVietQr) {
		provider.Name = "VIETQR"
	}
	intent.Provider = provider
	intent.Consumer = consumer
	intent.Acquirer.Id = consumer.BankBin
}

func parseAdditionalData(value string, data *AdditionalData) error {
	sub, err := parseTLV(value)
	if err != nil {
		return err
	}
	for _, s := range sub {
		switch s.id {
		case idBillNumber:
			data.BillNumber = s.value
		case idMobileNumber:
			data.MobileNumber = s.value
		case idStore:
			data.Store = s.value
		case idLoyaltyNumber:
			data.LoyaltyNumber = s.value
		case idReference:
			data.Reference = s.value
		case idCustomerLabel:
			data.CustomerLabel = s.value
		case idTerminal:
			data.Terminal = s.value
		case idPurpose:
			data.Purpose = s.value
		case idDataRequest:
			data.DataRequest = s.value
		}
	}
	return nil
}

// parseTLV splits an id(2) length(2) value stream.
func parseTLV(raw string) ([]field, error) {
	var fields []field
	rest := raw
	for len(rest) > 0 {
		if len(rest) < 4 {
			return nil, fmt.Errorf("truncated field header %q", rest)
		}
		id := rest[0:2]
		length, err := strconv.Atoi(rest[2:4])
		if err != nil || length < 0 {
			return nil, fmt.Errorf("bad length of field %v", id)
		}
		if len(rest) < 4+length {
			return nil, fmt.Errorf("truncated value of field %v", id)
		}
		fields = append(fields, field{id: id, value: rest[4 : 4+length]})
		rest = rest[4+length:]
	}
	return fields, nil
}

// Checksum computes the CRC-16/CCITT-FALSE trailer of a payload, uppercase
// hex, as mandated by the EMVCo QR specification.
func Checksum(payload string) string {
	crc := uint16(0xFFFF)
	for _, b := range []byte(payload) {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
