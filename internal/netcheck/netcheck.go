// Package netcheck provides a TCP reachability probe used by network-bound
// tasks before attempting downloads or clones.
package netcheck

import (
	"fmt"
	"net"
	"time"
)

// Probe reports whether a TCP connection to host:port can be established
// within the timeout.
func Probe(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, fmt.Sprintf("%d", port)), timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
