package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a build bar like [████░░░░] 4/9.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		total = 1
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}

	filled := done * width / total
	bar := StyleAccent.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("[%s] %d/%d", bar, done, total)
}
