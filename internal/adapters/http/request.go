package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"runtime/debug"

	"github.com/3-lines-studio/staticpub/internal/core"
)

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// InProcessClient issues requests straight into a handler's ServeHTTP without
// opening a socket.
type InProcessClient struct {
	host string
}

func NewInProcessClient() *InProcessClient {
	return &InProcessClient{host: "localhost"}
}

func (c *InProcessClient) Get(ctx context.Context, handler http.Handler, path string) (resp Response, err error) {
	if handler == nil {
		return Response{}, fmt.Errorf("nil handler")
	}

	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	req.Host = c.host
	rec := httptest.NewRecorder()

	defer func() {
		if r := recover(); r != nil {
			resp = Response{}
			err = &core.Error{
				Kind:  core.KindRetrieval,
				Op:    "GET " + path,
				Err:   fmt.Errorf("%w: %v", core.ErrPanic, r),
				Stack: debug.Stack(),
			}
		}
	}()

	handler.ServeHTTP(rec, req)

	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	result := rec.Result()
	return Response{
		Status: result.StatusCode,
		Header: result.Header,
		Body:   rec.Body.Bytes(),
	}, nil
}
