// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package neutron

import "time"

var AuthOptions = authOptions

func SetScheduleRetry(c *Client, attempts int, delay time.Duration) {
	c.scheduleAttempts = attempts
	c.scheduleDelay = delay
}
