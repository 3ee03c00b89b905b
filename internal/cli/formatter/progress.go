package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCompletion renders done/total as a bar followed by the counts, like
// "████░░░░ 2/4". The bar is green once complete, yellow past half and
// dim otherwise. An empty total renders dim counts only.
func RenderCompletion(done, total, width int) string {
	if total <= 0 {
		return Dim(fmt.Sprintf("%d/%d", done, total))
	}
	done = min(max(done, 0), total)
	counts := fmt.Sprintf("%d/%d", done, total)
	width = max(width, 2)

	filled := done * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleDim
	switch {
	case done == total:
		style = StyleGreen
	case done*2 >= total:
		style = StyleYellow
	}
	return style.Render(bar) + " " + counts
}
