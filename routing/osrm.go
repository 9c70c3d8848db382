package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hospice/hospital-locator-api/geo"
	"github.com/hospice/hospital-locator-api/pkg/upstream"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

const (
	DefaultOSRMURL = "https://router.project-osrm.org"
	DefaultTimeout = 5 * time.Second
)

var (
	ErrNoRoute       = errors.New("no route found")
	ErrBadStatus     = errors.New("routing service returned a non-success status")
	ErrNotJSON       = errors.New("routing service returned a non-json payload")
	ErrRouteDecoding = errors.New("routing response could not be decoded")
)

// Router returns the road distance between two coordinates in kilometers.
type Router interface {
	Distance(ctx context.Context, from, to geo.Coordinate) (float64, error)
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

type OSRMClient struct {
	baseURL string
	timeout time.Duration
}

func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	if baseURL == "" {
		baseURL = DefaultOSRMURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OSRMClient{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

func (c *OSRMClient) routeURL(from, to geo.Coordinate) string {
	return fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL, from.Longitude, from.Latitude, to.Longitude, to.Latitude)
}

// Distance returns the driving distance of the first route, rounded to one decimal.
func (c *OSRMClient) Distance(ctx context.Context, from, to geo.Coordinate) (float64, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.Header.SetMethod(fasthttp.MethodGet)
	req.SetRequestURI(c.routeURL(from, to))

	if err := upstream.Do(ctx, req, res, c.timeout); err != nil {
		return 0, fmt.Errorf("route request: %w", err)
	}

	if !upstream.IsSuccess(res.StatusCode()) {
		return 0, fmt.Errorf("%w: %d", ErrBadStatus, res.StatusCode())
	}

	if !strings.Contains(string(res.Header.ContentType()), "json") {
		return 0, ErrNotJSON
	}

	var response osrmResponse
	if err := jsoniter.Unmarshal(res.Body(), &response); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRouteDecoding, err)
	}

	if len(response.Routes) == 0 {
		return 0, ErrNoRoute
	}

	return geo.Round(response.Routes[0].Distance/1000, 1), nil
}
