// SPDX-License-Identifier: MIT

package gvbound

import "errors"

// ErrInvalidDomain is returned when (n, r, w) lies outside the range where
// the bound or the space sizes are defined: n ≤ 0, r ≤ 0, r ≥ n, w < 0 or
// w > n. Callers match it with errors.Is.
var ErrInvalidDomain = errors.New("gvbound: parameters outside valid domain")
