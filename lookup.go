// SPDX-License-Identifier: GPL-3.0-or-later

package avahi

// InterfaceUnspec selects any network interface.
const InterfaceUnspec int32 = -1

// Protocol is an address family tag.
//
// The zero value is [ProtocolUnspec], so a zero-valued query field
// means "any family".
type Protocol int

// Protocol values.
const (
	// ProtocolUnspec leaves the address family unspecified.
	ProtocolUnspec Protocol = iota

	// ProtocolInet selects IPv4.
	ProtocolInet

	// ProtocolInet6 selects IPv6.
	ProtocolInet6
)

// String implements fmt.Stringer.
func (p Protocol) String() string {
	switch p {
	case ProtocolInet:
		return "IPv4"
	case ProtocolInet6:
		return "IPv6"
	default:
		return "unspec"
	}
}

// Address family values on the wire, part of the daemon contract.
const (
	wireProtoUnspec int32 = -1
	wireProtoInet   int32 = 0
	wireProtoInet6  int32 = 1
)

// protocolEncode maps a [Protocol] to its wire value.
func protocolEncode(p Protocol) int32 {
	switch p {
	case ProtocolInet:
		return wireProtoInet
	case ProtocolInet6:
		return wireProtoInet6
	default:
		return wireProtoUnspec
	}
}

// protocolDecode maps a wire value to a [Protocol].
//
// Values this package does not know about decode to [ProtocolUnspec]
// rather than failing, so replies from daemons speaking a newer
// protocol revision still unwrap.
func protocolDecode(v int32) Protocol {
	switch v {
	case wireProtoInet:
		return ProtocolInet
	case wireProtoInet6:
		return ProtocolInet6
	default:
		return ProtocolUnspec
	}
}

// LookupFlags modify how the daemon performs a lookup. Combine flags
// with bitwise OR. The bit assignments are part of the daemon contract.
type LookupFlags uint32

// LookupFlags values.
const (
	// LookupUseWideArea forces the lookup onto wide-area DNS.
	LookupUseWideArea LookupFlags = 1 << iota

	// LookupUseMulticast forces the lookup onto multicast DNS.
	LookupUseMulticast

	// LookupNoTXT suppresses TXT record lookup.
	LookupNoTXT

	// LookupNoAddress suppresses address record lookup.
	LookupNoAddress
)

// LookupResultFlags describe how a lookup result was obtained. Test
// for a flag with bitwise AND. The bit assignments are part of the
// daemon contract.
type LookupResultFlags uint32

// LookupResultFlags values.
const (
	// LookupResultCached means the result was served from the cache.
	LookupResultCached LookupResultFlags = 1 << iota

	// LookupResultWideArea means wide-area DNS produced the result.
	LookupResultWideArea

	// LookupResultMulticast means multicast DNS produced the result.
	LookupResultMulticast

	// LookupResultLocal means the record originates from the local zone.
	LookupResultLocal

	// LookupResultOurOwn means the record belongs to this host.
	LookupResultOurOwn

	// LookupResultStatic means the record was statically configured.
	LookupResultStatic
)
