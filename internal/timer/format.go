package timer

import "fmt"

// FormatClock formats seconds as MM:SS. Minutes are not wrapped into hours,
// so a three hour interval reads 180:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
