package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"urban/internal/config"
	"urban/internal/usecase"

	"go.uber.org/zap"
)

// DarajaClient talks to the Safaricom Daraja API (OAuth + STK push).
// It satisfies usecase.PaymentGateway.
type DarajaClient struct {
	cfg        config.MpesaConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewDarajaClient(cfg config.MpesaConfig, logger *zap.Logger) *DarajaClient {
	return &DarajaClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// client-credentials token, fetched per push. Daraja tokens last an
// hour; the order rate here does not justify caching one.
func (c *DarajaClient) accessToken(ctx context.Context) (string, error) {
	url := c.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("daraja oauth request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("daraja oauth status %d: %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("daraja oauth response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("daraja oauth: empty access token")
	}

	return tok.AccessToken, nil
}

// Daraja wants 2547XXXXXXXX / 2541XXXXXXXX, no plus, no leading zero.
func normalizeMsisdn(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(phone, "0") {
		phone = "254" + phone[1:]
	}
	return phone
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// STKPush asks Daraja to pop the payment prompt on the customer's
// phone. The outcome arrives later on the callback URL.
func (c *DarajaClient) STKPush(ctx context.Context, phone string, amount int64, accountRef string, description string) (usecase.StkPushResult, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return usecase.StkPushResult{}, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.Shortcode + c.cfg.Passkey + timestamp),
	)

	phone = normalizeMsisdn(phone)

	payload := stkPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            phone,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   description,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return usecase.StkPushResult{}, err
	}

	url := c.cfg.BaseURL + "/mpesa/stkpush/v1/processrequest"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return usecase.StkPushResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return usecase.StkPushResult{}, fmt.Errorf("daraja stk push request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var out stkPushResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return usecase.StkPushResult{}, fmt.Errorf("daraja stk push response (%d): %s", resp.StatusCode, string(body))
	}

	if out.ErrorCode != "" {
		return usecase.StkPushResult{}, fmt.Errorf("daraja error %s: %s", out.ErrorCode, out.ErrorMessage)
	}
	if out.ResponseCode != "0" {
		return usecase.StkPushResult{}, fmt.Errorf("daraja stk push rejected: %s", out.ResponseDescription)
	}

	c.logger.Info("stk push accepted",
		zap.String("merchant_request_id", out.MerchantRequestID),
		zap.String("checkout_request_id", out.CheckoutRequestID))

	return usecase.StkPushResult{
		MerchantRequestID: out.MerchantRequestID,
		CheckoutRequestID: out.CheckoutRequestID,
		CustomerMessage:   out.CustomerMessage,
	}, nil
}
