// SPDX-License-Identifier: GPL-3.0-or-later

package avahi

// Address is a network address together with its address family.
type Address struct {
	// Address is the textual address.
	Address string

	// Protocol is the address family.
	Protocol Protocol
}

// HostName is a host name together with its address family.
type HostName struct {
	// Name is the host name.
	Name string

	// Protocol is the address family.
	Protocol Protocol
}

// HostNameQuery describes a host-name lookup.
//
// Construct using [NewHostNameQuery] or set the MANDATORY fields.
type HostNameQuery struct {
	// Name is the MANDATORY host name to resolve.
	Name string

	// Interface OPTIONALLY restricts the lookup to the network
	// interface with this index. [InterfaceUnspec], the
	// [NewHostNameQuery] default, means any interface.
	Interface int32

	// Protocol OPTIONALLY restricts the transport used to query.
	Protocol Protocol

	// AddressProtocol OPTIONALLY restricts the family of the
	// resolved address.
	AddressProtocol Protocol

	// Flags OPTIONALLY modify the lookup.
	//
	// Use [LookupUseWideArea], [LookupUseMulticast], [LookupNoTXT]
	// and [LookupNoAddress].
	Flags LookupFlags
}

// NewHostNameQuery constructs a [*HostNameQuery] with safe defaults.
//
// By default, the query uses any interface, leaves both address
// families unspecified, and sets no flags.
func NewHostNameQuery(name string) *HostNameQuery {
	return &HostNameQuery{
		Name:            name,
		Interface:       InterfaceUnspec,
		Protocol:        ProtocolUnspec,
		AddressProtocol: ProtocolUnspec,
		Flags:           0,
	}
}

// HostNameResult is the outcome of [*Client.ResolveHostName].
type HostNameResult struct {
	// HostName is the resolved host name.
	HostName HostName

	// Address is the resolved address.
	Address Address

	// Interface is the index of the interface the result came from.
	Interface int32

	// Flags describe how the result was obtained.
	Flags LookupResultFlags
}

// ResolveHostName asks the daemon to resolve a host name to an address.
//
// On failure, the error is either the daemon's own (for example when
// the name cannot be resolved) or a [*ReplyError] when the reply is
// malformed.
func (c *Client) ResolveHostName(query *HostNameQuery) (*HostNameResult, error) {
	body, err := c.call("ResolveHostName", "iisisu",
		query.Interface,
		protocolEncode(query.Protocol),
		query.Name,
		protocolEncode(query.AddressProtocol),
		uint32(query.Flags))
	if err != nil {
		return nil, err
	}

	// The reply is (interface, protocol, name, aprotocol, address,
	// flags) and the signature check above guarantees the types.
	result := &HostNameResult{
		HostName: HostName{
			Name:     body[2].(string),
			Protocol: protocolDecode(body[1].(int32)),
		},
		Address: Address{
			Address:  body[4].(string),
			Protocol: protocolDecode(body[3].(int32)),
		},
		Interface: body[0].(int32),
		Flags:     LookupResultFlags(body[5].(uint32)),
	}
	return result, nil
}

// AddressQuery describes an address lookup.
//
// Construct using [NewAddressQuery] or set the MANDATORY fields.
type AddressQuery struct {
	// Address is the MANDATORY textual address to resolve.
	Address string

	// Interface OPTIONALLY restricts the lookup to the network
	// interface with this index. [InterfaceUnspec], the
	// [NewAddressQuery] default, means any interface.
	Interface int32

	// Protocol OPTIONALLY restricts the transport used to query.
	Protocol Protocol

	// Flags OPTIONALLY modify the lookup.
	Flags LookupFlags
}

// NewAddressQuery constructs an [*AddressQuery] with safe defaults.
//
// By default, the query uses any interface, leaves the address family
// unspecified, and sets no flags.
func NewAddressQuery(address string) *AddressQuery {
	return &AddressQuery{
		Address:   address,
		Interface: InterfaceUnspec,
		Protocol:  ProtocolUnspec,
		Flags:     0,
	}
}

// AddressResult is the outcome of [*Client.ResolveAddress].
type AddressResult struct {
	// Address is the resolved address.
	Address Address

	// HostName is the resolved host name.
	HostName HostName

	// Interface is the index of the interface the result came from.
	Interface int32

	// Flags describe how the result was obtained.
	Flags LookupResultFlags
}

// ResolveAddress asks the daemon to resolve an address to a host name.
//
// On failure, the error is either the daemon's own (for example when
// the address cannot be resolved) or a [*ReplyError] when the reply is
// malformed.
func (c *Client) ResolveAddress(query *AddressQuery) (*AddressResult, error) {
	body, err := c.call("ResolveAddress", "iiissu",
		query.Interface,
		protocolEncode(query.Protocol),
		query.Address,
		uint32(query.Flags))
	if err != nil {
		return nil, err
	}

	// The reply is (interface, protocol, aprotocol, address, name,
	// flags) and the signature check above guarantees the types.
	result := &AddressResult{
		Address: Address{
			Address:  body[3].(string),
			Protocol: protocolDecode(body[2].(int32)),
		},
		HostName: HostName{
			Name:     body[4].(string),
			Protocol: protocolDecode(body[1].(int32)),
		},
		Interface: body[0].(int32),
		Flags:     LookupResultFlags(body[5].(uint32)),
	}
	return result, nil
}
