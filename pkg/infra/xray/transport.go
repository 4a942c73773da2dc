package xray

import (
	"context"
	"net"
	"net/http"
	"time"
)

// Fixed transport timeouts. Read and write are per-operation idle limits on the
// connection, not limits on the whole exchange.
const (
	ConnectTimeout = 10 * time.Second
	WriteTimeout   = 60 * time.Second
	ReadTimeout    = 180 * time.Second
)

// NewHTTPClient creates the HTTP client shared by every Xray call
func NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return &deadlineConn{
				Conn:         conn,
				readTimeout:  ReadTimeout,
				writeTimeout: WriteTimeout,
			}, nil
		},
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: ConnectTimeout,
		MaxIdleConns:        4,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{Transport: transport}
}

// deadlineConn extends the read or write deadline before every I/O call
type deadlineConn struct {
	net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (c *deadlineConn) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(b)
}

func (c *deadlineConn) Write(b []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return 0, err
	}
	return c.Conn.Write(b)
}
