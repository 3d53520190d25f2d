package pathsd

import "strings"

// Verdict classifies a raw fragment line
type Verdict int

const (
	Accepted Verdict = iota
	RejectedInvalidChar
	RejectedBlank
	RejectedComment
)

// String returns a short label used in log fields
func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case RejectedInvalidChar:
		return "invalid-char"
	case RejectedBlank:
		return "blank"
	case RejectedComment:
		return "comment"
	default:
		return "unknown"
	}
}

const invalidChars = "\x00?<>:|*\"\\"

// CheckLine validates a raw, unexpanded line. Character validation runs on
// the untrimmed text; the blank and comment checks run on the trimmed text.
func CheckLine(line string) Verdict {
	for _, c := range line {
		if c < 0x20 || strings.ContainsRune(invalidChars, c) {
			return RejectedInvalidChar
		}
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return RejectedBlank
	case strings.HasPrefix(trimmed, "#"):
		return RejectedComment
	}
	return Accepted
}

// splitLines splits on \n. A \r directly before a \n is dropped and a final
// newline does not produce an extra empty line.
func splitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, strings.TrimSuffix(content[:i], "\r"))
		content = content[i+1:]
	}
	return lines
}
