// SPDX-License-Identifier: GPL-3.0-or-later

package avahi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtocolCodecRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		protocol Protocol
		wire     int32
	}{
		{"Unspec", ProtocolUnspec, -1},
		{"Inet", ProtocolInet, 0},
		{"Inet6", ProtocolInet6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wire, protocolEncode(tt.protocol))
			require.Equal(t, tt.protocol, protocolDecode(tt.wire))
			require.Equal(t, tt.protocol, protocolDecode(protocolEncode(tt.protocol)))
		})
	}
}

func TestProtocolDecodeUnknownIsLenient(t *testing.T) {
	for _, wire := range []int32{2, 7, 255, -2, -100} {
		require.Equal(t, ProtocolUnspec, protocolDecode(wire))
	}
}

func TestProtocolString(t *testing.T) {
	require.Equal(t, "unspec", ProtocolUnspec.String())
	require.Equal(t, "IPv4", ProtocolInet.String())
	require.Equal(t, "IPv6", ProtocolInet6.String())
	require.Equal(t, "unspec", Protocol(42).String())
}

func TestLookupFlagsBits(t *testing.T) {
	require.Equal(t, LookupFlags(1), LookupUseWideArea)
	require.Equal(t, LookupFlags(2), LookupUseMulticast)
	require.Equal(t, LookupFlags(4), LookupNoTXT)
	require.Equal(t, LookupFlags(8), LookupNoAddress)

	// The combined mask is the OR of the individual bits,
	// independent of the order flags are combined in.
	combined := LookupUseMulticast | LookupNoTXT
	require.Equal(t, LookupFlags(6), combined)
	require.Equal(t, combined, LookupNoTXT|LookupUseMulticast)
	require.NotZero(t, combined&LookupUseMulticast)
	require.NotZero(t, combined&LookupNoTXT)
	require.Zero(t, combined&LookupUseWideArea)
	require.Zero(t, combined&LookupNoAddress)
}

func TestLookupResultFlagsBits(t *testing.T) {
	require.Equal(t, LookupResultFlags(1), LookupResultCached)
	require.Equal(t, LookupResultFlags(2), LookupResultWideArea)
	require.Equal(t, LookupResultFlags(4), LookupResultMulticast)
	require.Equal(t, LookupResultFlags(8), LookupResultLocal)
	require.Equal(t, LookupResultFlags(16), LookupResultOurOwn)
	require.Equal(t, LookupResultFlags(32), LookupResultStatic)

	// Decoding a mask yields exactly the flags whose bits are set.
	decoded := LookupResultFlags(uint32(0b101011))
	require.NotZero(t, decoded&LookupResultCached)
	require.NotZero(t, decoded&LookupResultWideArea)
	require.Zero(t, decoded&LookupResultMulticast)
	require.NotZero(t, decoded&LookupResultLocal)
	require.Zero(t, decoded&LookupResultOurOwn)
	require.NotZero(t, decoded&LookupResultStatic)
}
