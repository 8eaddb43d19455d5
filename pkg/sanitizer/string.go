package sanitizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiCSIRegex matches ANSI control sequences such as colour codes ("\x1b[31m"),
// cursor movement ("\x1b[H") and screen clearing ("\x1b[2J").
var ansiCSIRegex = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

var lineBreakReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// DropInvalidUTF8 removes byte sequences that are not valid UTF-8.
func DropInvalidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}

// StripANSI removes ANSI CSI escape sequences.
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansiCSIRegex.ReplaceAllString(s, "")
}

// SingleLine replaces CRLF, LF, CR and tab characters with a single space each.
func SingleLine(s string) string {
	return lineBreakReplacer.Replace(s)
}

// RemoveControlChars removes C0 (U+0000-U+001F), DEL and C1 (U+0080-U+009F)
// control characters.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)
}

func isControl(r rune) bool {
	return r <= 0x1f || (r >= 0x7f && r <= 0x9f)
}

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MaxLength truncates a string to at most maxLen characters (runes).
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLen])
}
