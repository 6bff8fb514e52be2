// internal/core/services/clock.go
package services

import "time"

// timeNow is swapped out in tests that pin the derivation date.
var timeNow = time.Now
