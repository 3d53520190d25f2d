package ui

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/errors"
)

// FormatError renders err for the terminal as
// "Error [CODE]: message (key=value, ...)". Errors without a code omit it.
func FormatError(err error, mode Mode) string {
	if err == nil {
		return ""
	}
	styler := NewStyler(mode)

	var b strings.Builder
	message := err.Error()
	b.WriteString(styler.Render("Error", "Error"))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		message = stripCodeTags(err, message)
		b.WriteString(" ")
		b.WriteString(styler.Render("ErrorCode", "["+string(code)+"]"))
	}
	b.WriteString(": ")
	b.WriteString(message)

	details := errors.GetErrorDetails(err)
	if len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, details[k])
		}
		b.WriteString(" ")
		b.WriteString(styler.Render("Muted", "("+strings.Join(parts, ", ")+")"))
	}

	return b.String()
}

// stripCodeTags removes the "[CODE] " prefix of every coded error in the
// chain of err from message; the outermost code is shown once by the caller.
func stripCodeTags(err error, message string) string {
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if pmErr, ok := e.(*errors.PathMasterError); ok {
			message = strings.ReplaceAll(message, "["+string(pmErr.Code)+"] ", "")
		}
	}
	return message
}
