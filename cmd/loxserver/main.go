/*
Loxserver starts a lox evaluation server and begins listening for new
connections.

Once started, the server will listen for HTTP requests and respond to them
using REST protocol. By default, it will listen on localhost:8080. This can
be changed with the --listen/-l flag (or config via environment var). The
flag argument must be either a full address with port, such as
"192.168.0.2:6001", or just the port preceeded by a colon, such as ":6001".

Usage:

	loxserver [flags]
	loxserver [flags] -l [[ADDRESS]:PORT]

The flags are:

	-v, --version
		Give the current version of the lox server and then exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. If not given, will default to the value of environment
		variable LOX_LISTEN_ADDRESS, and if that is not given, will default
		to localhost:8080.
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/lox/internal/version"
	"github.com/dekarrin/lox/server"
	"github.com/spf13/pflag"
)

const (
	// EnvListen is the environment variable consulted for the listen
	// address when the --listen flag is not given.
	EnvListen = "LOX_LISTEN_ADDRESS"

	// ExitUsage is the conventional exit status for command line usage
	// errors.
	ExitUsage = 64
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the lox server and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (lox v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Usage: loxserver [flags]\n")
		os.Exit(ExitUsage)
	}

	listen := *flagListen
	if listen == "" {
		listen = os.Getenv(EnvListen)
	}

	address, port, err := parseListenAddress(listen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(ExitUsage)
	}

	s := server.New()
	s.ServeForever(address, port)
}

// parseListenAddress splits an "ADDRESS:PORT" or ":PORT" string into its
// parts. An empty string selects the server defaults.
func parseListenAddress(listen string) (address string, port int, err error) {
	if listen == "" {
		return "", 0, nil
	}

	parts := strings.SplitN(listen, ":", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("listen address must be in ADDRESS:PORT or :PORT format: %q", listen)
	}

	address = parts[0]
	port, err = strconv.Atoi(parts[1])
	if err != nil || port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("listen address has invalid port: %q", listen)
	}

	return address, port, nil
}
