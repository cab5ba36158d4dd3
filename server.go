// SPDX-License-Identifier: GPL-3.0-or-later

package avahi

// GetVersionString returns the daemon version string.
func (c *Client) GetVersionString() (string, error) {
	return c.callString("GetVersionString")
}

// GetAPIVersion returns the daemon API version.
func (c *Client) GetAPIVersion() (uint32, error) {
	body, err := c.call("GetAPIVersion", "u")
	if err != nil {
		return 0, err
	}
	return body[0].(uint32), nil
}

// GetHostName returns the daemon host name.
func (c *Client) GetHostName() (string, error) {
	return c.callString("GetHostName")
}

// SetHostName sets the daemon host name.
func (c *Client) SetHostName(name string) error {
	_, err := c.call("SetHostName", "", name)
	return err
}

// GetDomainName returns the default domain the daemon announces in.
func (c *Client) GetDomainName() (string, error) {
	return c.callString("GetDomainName")
}

// GetHostNameFqdn returns the daemon's fully qualified host name.
func (c *Client) GetHostNameFqdn() (string, error) {
	return c.callString("GetHostNameFqdn")
}

// GetAlternativeHostName returns an alternative for a host name that is
// already taken, for example "foo-2" for "foo".
func (c *Client) GetAlternativeHostName(name string) (string, error) {
	return c.callString("GetAlternativeHostName", name)
}

// GetAlternativeServiceName returns an alternative for a service name
// that is already taken, for example "foo #2" for "foo".
func (c *Client) GetAlternativeServiceName(name string) (string, error) {
	return c.callString("GetAlternativeServiceName", name)
}
