package upstream

import (
	"context"
	"time"

	"github.com/valyala/fasthttp"
)

// Deadline returns the context deadline, or now+timeout when the context has none.
func Deadline(ctx context.Context, timeout time.Duration) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}
	return time.Now().Add(timeout)
}

// Do executes req against its URI and honours the context deadline.
func Do(ctx context.Context, req *fasthttp.Request, res *fasthttp.Response, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fasthttp.DoDeadline(req, res, Deadline(ctx, timeout))
}

func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
