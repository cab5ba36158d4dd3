// SPDX-License-Identifier: GPL-3.0-or-later

package avahi_test

import (
	"fmt"

	"github.com/bassosimone/avahi"
	"github.com/bassosimone/runtimex"
)

// These examples require a running Avahi daemon on the system bus,
// hence they have no expected output and are only compiled.

func ExampleClient_GetHostName() {
	client := runtimex.PanicOnError1(avahi.NewClient())
	defer client.Close()

	hostname := runtimex.PanicOnError1(client.GetHostName())
	fmt.Println(hostname)
}

func ExampleClient_ResolveHostName() {
	client := runtimex.PanicOnError1(avahi.NewClient())
	defer client.Close()

	query := avahi.NewHostNameQuery("foo.local")
	query.AddressProtocol = avahi.ProtocolInet
	query.Flags = avahi.LookupUseMulticast

	result := runtimex.PanicOnError1(client.ResolveHostName(query))
	fmt.Printf("%s\t%s\n", result.Address.Address, result.HostName.Name)
}

func ExampleClient_ResolveAddress() {
	client := runtimex.PanicOnError1(avahi.NewClient())
	defer client.Close()

	query := avahi.NewAddressQuery("192.168.1.1")

	result := runtimex.PanicOnError1(client.ResolveAddress(query))
	fmt.Printf("%s\t%s\n", result.Address.Address, result.HostName.Name)
}
