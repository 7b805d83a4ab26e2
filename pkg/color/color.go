package color

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

var (
	Red       = termenv.ANSIRed
	Green     = termenv.ANSIGreen
	Yellow    = termenv.ANSIYellow
	Blue      = termenv.ANSIBlue
	Cyan      = termenv.ANSICyan
	Gray      = termenv.ANSIBrightBlack
	BrightRed = termenv.ANSIBrightRed
)

// Diagnostics go to stderr, so that is the stream whose capabilities matter.
var output = termenv.NewOutput(os.Stderr)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || output.Profile == termenv.Ascii {
		colorEnabled = false
	}
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func style(text string) termenv.Style {
	return output.String(text)
}

func Colorize(color termenv.Color, text string) string {
	if !colorEnabled {
		return text
	}
	return style(text).Foreground(color).String()
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	if !colorEnabled {
		return text
	}
	return style(text).Bold().String()
}

// ErrorAt renders message followed by source and a caret under the byte offset.
// The caret column accounts for wide characters before the offset.
func ErrorAt(source string, offset int, message string) string {
	offset = max(0, min(offset, len(source)))
	caret := strings.Repeat(" ", runewidth.StringWidth(source[:offset])) + "^"

	if !colorEnabled {
		return fmt.Sprintf("Error at %d: %s\n%s\n%s", offset, message, source, caret)
	}

	return fmt.Sprintf("%s at %s: %s\n%s\n%s",
		BrightRedText(BoldText("Error")),
		CyanText(fmt.Sprintf("%d", offset)),
		message,
		GrayText(source),
		YellowText(caret))
}
