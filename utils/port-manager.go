package utils

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ParseListenAddress accepts "host:port", ":port" or a bare port number and
// returns the normalized "host:port" together with its parts.
func ParseListenAddress(addr string) (string, string, int, error) {
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", "", 0, fmt.Errorf("invalid listen address %s: %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return "", "", 0, fmt.Errorf("invalid port: %s", portStr)
	}

	return net.JoinHostPort(host, portStr), host, port, nil
}

// IsPortAvailable reports whether a tcp4 listener can bind host:port.
func IsPortAvailable(host string, port int) bool {
	log := Logger().WithField("port", port)
	if port < 0 || port > 65535 {
		log.Debugf("port out of range")
		return false
	}

	if host == "localhost" {
		host = "127.0.0.1"
	}

	log.Debugf("Checking if port is available on %s", host)
	listener, err := net.ListenTCP("tcp4", &net.TCPAddr{IP: net.ParseIP(host), Port: port})
	if err != nil {
		log.Debugf("port is not available: %v", err)
		return false
	}

	defer listener.Close()
	return true
}
