package overpass

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hospice/hospital-locator-api/geo"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/pkg/upstream"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	DefaultURL     = "https://overpass-api.de/api/interpreter"
	DefaultRadius  = 10000
	DefaultTimeout = 25 * time.Second
)

var ErrUpstream = errors.New("facility query service unavailable")

var selectors = []string{
	`["amenity"~"hospital|clinic|doctors"]`,
	`["healthcare"~"hospital|clinic"]`,
}

type Client struct {
	url     string
	timeout time.Duration
}

func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{url: url, timeout: timeout}
}

// Query builds the Overpass QL statement for medical facilities within radius meters of origin.
func Query(origin geo.Coordinate, radius int, timeout time.Duration) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radius, origin.Latitude, origin.Longitude)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", int(timeout.Seconds()))
	for _, kind := range []string{"node", "way", "relation"} {
		for _, selector := range selectors {
			b.WriteString("  " + kind + selector + around + ";\n")
		}
	}
	b.WriteString(");\nout center;\n")

	return b.String()
}

// Nearby returns the raw elements around origin. Any transport, status or
// decoding failure is reported as ErrUpstream.
func (c *Client) Nearby(ctx context.Context, origin geo.Coordinate, radius int) ([]Element, error) {
	if radius <= 0 {
		radius = DefaultRadius
	}

	form := url.Values{}
	form.Set("data", Query(origin, radius, c.timeout))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-www-form-urlencoded")
	req.SetRequestURI(c.url)
	req.SetBodyString(form.Encode())

	start := time.Now()
	if err := upstream.Do(ctx, req, res, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if !upstream.IsSuccess(res.StatusCode()) {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode())
	}

	var response Response
	if err := jsoniter.Unmarshal(res.Body(), &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	log.Logger().Debug("overpass query finished",
		zap.Int("elements", len(response.Elements)),
		zap.Duration("took", time.Since(start)),
	)

	return response.Elements, nil
}
