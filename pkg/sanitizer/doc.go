// Package sanitizer turns untrusted text into output that is safe for a
// specific sink.
//
// Two independent families of pure functions are provided:
//
//   - HTML: EscapeHTML encodes the characters & < > " ' / as entities so the
//     result can be placed in a text node or an attribute. UnescapeHTML is its
//     inverse. StripTags drops all markup and returns plain text.
//
//   - Logs: ForLog converts any value (strings, errors, maps, structs, nil) into
//     a single bounded line with no control characters, ANSI escape sequences or
//     line breaks, so an attacker cannot forge log entries or drive a terminal.
//     ErrorForLog keeps only the name and message of an error. StructuredLog
//     renders one JSON object per call with every key and value sanitized.
//
// The helpers never return errors and never panic on malformed input. They
// degrade to safe placeholders instead ("null", "[Object object]",
// "Unknown error").
//
// Small transforms compose with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripANSI,
//	    sanitizer.SingleLine,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	line := clean("\x1b[31merror\x1b[0m\nnext") // "error next"
//
// All functions are stateless and safe for concurrent use.
package sanitizer
