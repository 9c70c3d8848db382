package handler

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

type response struct {
	status int
	header func(string) string
	body   []byte
}

func (r response) decode(t *testing.T, out interface{}) {
	t.Helper()
	require.NoError(t, jsoniter.Unmarshal(r.body, out), string(r.body))
}

func (r response) message(t *testing.T) string {
	var e ErrorResponse
	r.decode(t, &e)
	return e.Message
}

func call(t *testing.T, app *fiber.App, method, target string, body interface{}, headers map[string]string) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := jsoniter.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return response{status: resp.StatusCode, header: resp.Header.Get, body: data}
}
