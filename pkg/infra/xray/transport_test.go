package xray_test

import (
	"net/http"
	"testing"

	"github.com/elangsegara/xray-sync/pkg/infra/xray"
	"github.com/m-mizutani/gt"
)

func TestNewHTTPClient(t *testing.T) {
	client := xray.NewHTTPClient()

	transport, ok := client.Transport.(*http.Transport)
	gt.True(t, ok)
	gt.Value(t, transport.DialContext).NotNil()
	gt.Value(t, transport.TLSHandshakeTimeout).Equal(xray.ConnectTimeout)

	// Whole-exchange timeout stays unset so large exports can stream
	gt.Value(t, client.Timeout).Equal(0)
}
