package adapter

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"correios-rates/internal/core/httpclient"
	"correios-rates/internal/core/logger"
	"correios-rates/internal/features/quotes/domain"

	"go.uber.org/zap"
)

const (
	soapAction      = "http://tempuri.org/CalcPrecoPrazo"
	soapContentType = "text/xml; charset=utf-8"

	// parcelFormatBox is the Correios format code for box/package parcels.
	parcelFormatBox = "1"
)

// CorreiosAdapter queries the Correios CalcPrecoPrazo SOAP 1.1 web service
// for price and lead-time quotes.
type CorreiosAdapter struct {
	// client is the HTTP client used for SOAP requests.
	client *http.Client
	logger *zap.Logger
}

// NewCorreiosAdapter creates a new CorreiosAdapter.
func NewCorreiosAdapter() *CorreiosAdapter {
	return &CorreiosAdapter{
		client: httpclient.NewClient(30 * time.Second),
		logger: logger.Get(),
	}
}

// soapEnvelope is the SOAP 1.1 request wrapper.
type soapEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	XSI     string   `xml:"xmlns:xsi,attr"`
	XSD     string   `xml:"xmlns:xsd,attr"`
	Soap    string   `xml:"xmlns:soap,attr"`
	Body    soapBody `xml:"soap:Body"`
}

type soapBody struct {
	CalcPrecoPrazo calcPrecoPrazo `xml:"CalcPrecoPrazo"`
}

// calcPrecoPrazo mirrors the CalcPrecoPrazo operation parameters. Field order
// matters to the service.
type calcPrecoPrazo struct {
	XMLNS          string `xml:"xmlns,attr"`
	CompanyCode    string `xml:"nCdEmpresa"`
	Password       string `xml:"sDsSenha"`
	ServiceCodes   string `xml:"nCdServico"`
	PostalCodeFrom string `xml:"sCepOrigem"`
	PostalCodeTo   string `xml:"sCepDestino"`
	Weight         string `xml:"nVlPeso"`
	Format         string `xml:"nCdFormato"`
	Length         string `xml:"nVlComprimento"`
	Height         string `xml:"nVlAltura"`
	Width          string `xml:"nVlLargura"`
	Diameter       string `xml:"nVlDiametro"`
	OwnHands       string `xml:"sCdMaoPropria"`
	DeclaredValue  string `xml:"nVlValorDeclarado"`
	ReceiptNotice  string `xml:"sCdAvisoRecebimento"`
}

// calcResponseEnvelope unwraps the SOAP response down to the per-service
// quote records.
type calcResponseEnvelope struct {
	XMLName  xml.Name        `xml:"Envelope"`
	Services []correiosQuote `xml:"Body>CalcPrecoPrazoResponse>CalcPrecoPrazoResult>Servicos>cServico"`
}

// correiosQuote is one cServico record from the web service.
type correiosQuote struct {
	// Codigo is the service code, returned without the leading zero.
	Codigo string `xml:"Codigo"`
	// Valor is the price in BRL, pt-BR formatted (e.g., "25,00").
	Valor string `xml:"Valor"`
	// PrazoEntrega is the lead time in days.
	PrazoEntrega string `xml:"PrazoEntrega"`
	// Erro is the per-service error code, "0" or empty on success.
	Erro string `xml:"Erro"`
	// MsgErro describes the error.
	MsgErro string `xml:"MsgErro"`
}

// Quote posts a CalcPrecoPrazo request and returns the raw per-service
// records in carrier order.
func (a *CorreiosAdapter) Quote(ctx context.Context, req *domain.NormalizedRequest) ([]domain.RawQuote, error) {
	body, err := buildEnvelope(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build soap envelope: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", soapContentType)
	httpReq.Header.Set("SOAPAction", soapAction)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("correios API returned status: %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	quotes, err := parseResponse(payload)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("correios quote response",
		zap.String("service_codes", req.ServiceCodes),
		zap.Int("quotes", len(quotes)),
	)
	return quotes, nil
}

// buildEnvelope serializes the normalized request into a SOAP 1.1 envelope.
func buildEnvelope(req *domain.NormalizedRequest) ([]byte, error) {
	envelope := soapEnvelope{
		XSI:  "http://www.w3.org/2001/XMLSchema-instance",
		XSD:  "http://www.w3.org/2001/XMLSchema",
		Soap: "http://schemas.xmlsoap.org/soap/envelope/",
		Body: soapBody{
			CalcPrecoPrazo: calcPrecoPrazo{
				XMLNS:          "http://tempuri.org/",
				CompanyCode:    req.CompanyCode,
				Password:       req.Password,
				ServiceCodes:   req.ServiceCodes,
				PostalCodeFrom: req.PostalCodeFrom,
				PostalCodeTo:   req.PostalCodeTo,
				Weight:         strconv.Itoa(req.WeightKg),
				Format:         parcelFormatBox,
				Length:         req.LengthCm.String(),
				Height:         req.HeightCm.String(),
				Width:          req.WidthCm.String(),
				Diameter:       "0",
				OwnHands:       "N",
				DeclaredValue:  req.DeclaredValue.StringFixed(2),
				ReceiptNotice:  "N",
			},
		},
	}

	body, err := xml.Marshal(envelope)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// parseResponse unwraps the SOAP response into raw quote records. The carrier
// reports "0" for successful services; it is mapped to the empty error code.
func parseResponse(payload []byte) ([]domain.RawQuote, error) {
	var envelope calcResponseEnvelope
	if err := xml.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse correios response: %w", err)
	}

	quotes := make([]domain.RawQuote, 0, len(envelope.Services))
	for _, svc := range envelope.Services {
		errorCode := svc.Erro
		if errorCode == "0" {
			errorCode = ""
		}
		quotes = append(quotes, domain.RawQuote{
			Code:         svc.Codigo,
			Price:        svc.Valor,
			DeliveryDays: svc.PrazoEntrega,
			ErrorCode:    errorCode,
			ErrorMessage: svc.MsgErro,
		})
	}
	return quotes, nil
}
