package league

import (
	"fmt"
	"strings"
)

// FormatRecord renders a win-loss record as "W-L", or "W-L-T" when the team
// has ties.
func FormatRecord(wins, losses, ties int) string {
	if ties > 0 {
		return fmt.Sprintf("%d-%d-%d", wins, losses, ties)
	}
	return fmt.Sprintf("%d-%d", wins, losses)
}

// FormatOwners joins owner names for display: "A", "A & B", "A, B & C".
func FormatOwners(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " & " + names[1]
	}
	last := len(names) - 1
	return strings.Join(names[:last], ", ") + " & " + names[last]
}
