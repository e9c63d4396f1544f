package dirmeta

import "fmt"

// sizeUnits are the supported size suffixes, smallest first. Sizes beyond
// the last unit keep dividing but reuse the ZB suffix.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB"}

// FormatSize converts a size in bytes to a human-readable string with two
// decimal places, dividing by 1024 per unit step.
func FormatSize(size float64) string {
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f %s", size, sizeUnits[len(sizeUnits)-1])
}
