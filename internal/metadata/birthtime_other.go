//go:build !linux && !darwin && !windows

package metadata

import "time"

func birthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
