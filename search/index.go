package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/pkg/upstream"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type index[T any] struct {
	connStr string
	name    string
}

func NewIndex[T any](connStr, name string) *index[T] {
	return &index[T]{
		connStr: strings.TrimRight(connStr, "/"),
		name:    name,
	}
}

func (i *index[T]) Bulk(ctx context.Context, items []Item[T]) error {
	var payload []byte

	for _, item := range items {
		action, _ := jsoniter.Marshal(map[string]interface{}{
			"index": map[string]string{"_index": i.name, "_id": item.Id},
		})
		payload = append(payload, action...)
		payload = append(payload, '\n')
		source, err := jsoniter.Marshal(item.Source)
		if err != nil {
			return fmt.Errorf("could not encode document %s: %w", item.Id, err)
		}
		payload = append(payload, source...)
		payload = append(payload, '\n')
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.SetBody(payload)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/x-ndjson")
	req.SetRequestURI(i.connStr + "/_bulk")

	if err := upstream.Do(ctx, req, res, requestTimeout); err != nil {
		return err
	}

	if !upstream.IsSuccess(res.StatusCode()) {
		return fmt.Errorf("elastic bulk write failed with status %d", res.StatusCode())
	}

	var response BulkResponse
	if err := jsoniter.Unmarshal(res.Body(), &response); err != nil {
		return err
	}

	if response.Errors {
		return fmt.Errorf("elastic bulk write reported item errors")
	}

	log.Logger().Debug("elastic bulk write response", zap.Int("items", len(response.Items)), zap.Int("took", response.Took))

	return nil
}

func (i *index[T]) Search(ctx context.Context, query map[string]interface{}) (*Result[T], error) {
	payload, err := jsoniter.Marshal(query)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.SetBody(payload)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetRequestURI(i.connStr + "/" + i.name + "/_search")

	if err := upstream.Do(ctx, req, res, requestTimeout); err != nil {
		return nil, err
	}

	if !upstream.IsSuccess(res.StatusCode()) {
		return nil, fmt.Errorf("elastic search failed with status %d", res.StatusCode())
	}

	var response Result[T]
	if err := jsoniter.Unmarshal(res.Body(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}
