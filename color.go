package iconforge

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Default icon colors.
var (
	DefaultBackground = gg.Hex("#0066cc")
	DefaultForeground = gg.White
)

// ParseColor parses a hex color in one of the forms "rgb", "rgba",
// "rrggbb" or "rrggbbaa", with or without a leading '#'.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}
