package messaging

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hospice/hospital-locator-api/pkg/upstream"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

const (
	DefaultTwilioURL = "https://api.twilio.com"
	whatsappPrefix   = "whatsapp:"
	gatewayTimeout   = 10 * time.Second
)

var ErrGateway = errors.New("messaging gateway rejected the message")

// Gateway delivers a text to a phone number. Delivery is best effort.
type Gateway interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type twilioResponse struct {
	Sid     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type TwilioClient struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

func NewTwilioClient(baseURL, accountSID, authToken, from string) *TwilioClient {
	if baseURL == "" {
		baseURL = DefaultTwilioURL
	}
	return &TwilioClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		from:       WhatsAppAddress(from),
	}
}

// WhatsAppAddress prefixes a phone number with the whatsapp channel once.
func WhatsAppAddress(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, whatsappPrefix) {
		return phone
	}
	return whatsappPrefix + phone
}

// StripWhatsApp removes the channel prefix from a gateway address.
func StripWhatsApp(address string) string {
	return strings.TrimPrefix(strings.TrimSpace(address), whatsappPrefix)
}

// Send posts a WhatsApp message and returns the gateway message sid.
func (c *TwilioClient) Send(ctx context.Context, to, body string) (string, error) {
	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", WhatsAppAddress(to))
	form.Set("Body", body)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-www-form-urlencoded")
	req.Header.Set(fasthttp.HeaderAuthorization, basicAuth(c.accountSID, c.authToken))
	req.SetRequestURI(fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, url.PathEscape(c.accountSID)))
	req.SetBodyString(form.Encode())

	if err := upstream.Do(ctx, req, res, gatewayTimeout); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	var response twilioResponse
	_ = jsoniter.Unmarshal(res.Body(), &response)

	if !upstream.IsSuccess(res.StatusCode()) {
		return "", fmt.Errorf("%w: status %d: %s", ErrGateway, res.StatusCode(), response.Message)
	}

	return response.Sid, nil
}

func basicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}
