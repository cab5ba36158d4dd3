// SPDX-License-Identifier: GPL-3.0-or-later

// Package avahi is a client for the Avahi mDNS/DNS-SD daemon.
//
// [NewClient] and [*Client] expose the daemon's org.freedesktop.Avahi.Server2
// methods on the system bus: version and host-name queries, and host-name
// and address resolution.
//
// This package does not implement mDNS. The daemon performs the actual
// service-discovery work; we marshal arguments onto the bus using
// [github.com/godbus/dbus/v5], validate each reply's value-type signature,
// and unwrap the values into typed results.
package avahi
