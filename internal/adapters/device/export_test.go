package device

import "time"

// SetNow replaces the clock used for the probe cache buster.
func (c *Client) SetNow(now func() time.Time) {
	c.now = now
}
