package xray

import (
	"fmt"
	"io"
	"net/http"

	"github.com/elangsegara/xray-sync/pkg/domain/model"
)

// maxErrorBody bounds how much of a rejected response body is kept
const maxErrorBody = 4096

func newResponseError(resp *http.Response) *model.ResponseError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return &model.ResponseError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     status,
		Body:       string(body),
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
