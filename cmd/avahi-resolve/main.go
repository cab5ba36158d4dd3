// SPDX-License-Identifier: GPL-3.0-or-later

// Command avahi-resolve resolves host names or addresses through the
// Avahi daemon and prints one "<address>\t<host name>" line per
// argument.
package main

import (
	"fmt"
	"os"

	"github.com/bassosimone/avahi"
	flag "github.com/spf13/pflag"
)

var (
	nameMode = flag.BoolP("name", "n", false, "resolve host names to addresses")
	addrMode = flag.BoolP("address", "a", false, "resolve addresses to host names")
	ipv4Only = flag.BoolP("ipv4", "4", false, "resolve IPv4 addresses only")
	ipv6Only = flag.BoolP("ipv6", "6", false, "resolve IPv6 addresses only")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()
	if *nameMode == *addrMode || flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: avahi-resolve -n|-a [-4|-6] <name-or-address>...")
		return 2
	}

	proto := avahi.ProtocolUnspec
	switch {
	case *ipv4Only:
		proto = avahi.ProtocolInet
	case *ipv6Only:
		proto = avahi.ProtocolInet6
	}

	client, err := avahi.NewClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "avahi-resolve: %s\n", err)
		return 1
	}
	defer client.Close()

	code := 0
	for _, arg := range flag.Args() {
		address, name, err := resolve(client, arg, proto)
		if err != nil {
			fmt.Fprintf(os.Stderr, "avahi-resolve: %s: %s\n", arg, err)
			code = 1
			continue
		}
		fmt.Printf("%s\t%s\n", address, name)
	}
	return code
}

func resolve(client *avahi.Client, arg string, proto avahi.Protocol) (string, string, error) {
	if *nameMode {
		query := avahi.NewHostNameQuery(arg)
		query.AddressProtocol = proto
		result, err := client.ResolveHostName(query)
		if err != nil {
			return "", "", err
		}
		return result.Address.Address, result.HostName.Name, nil
	}

	query := avahi.NewAddressQuery(arg)
	query.Protocol = proto
	result, err := client.ResolveAddress(query)
	if err != nil {
		return "", "", err
	}
	return result.Address.Address, result.HostName.Name, nil
}
