// Package expand substitutes $NAME and ${NAME} references in fragment lines.
//
// Lookups go through an Environ so callers can inject a fixed mapping in
// tests and the real process environment at the outermost boundary. Every
// lookup yields a tagged outcome; only Found substitutes, every other outcome
// leaves the reference text untouched and is reported as a Miss.
package expand

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Status is the outcome of a single variable lookup
type Status int

const (
	Found Status = iota
	NotSet
	NotUTF8
)

// String returns a short label used in log fields
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotSet:
		return "not-set"
	case NotUTF8:
		return "not-utf8"
	default:
		return "unknown"
	}
}

// Lookup is a tagged lookup result. Value is only meaningful when Status is Found.
type Lookup struct {
	Value  string
	Status Status
}

// Environ resolves variable names
type Environ interface {
	Lookup(name string) Lookup
}

// MapEnv is an Environ backed by a fixed mapping
type MapEnv map[string]string

// Lookup implements Environ
func (m MapEnv) Lookup(name string) Lookup {
	v, ok := m[name]
	return classify(v, ok)
}

type processEnv struct{}

// ProcessEnv returns an Environ reading the current process environment
func ProcessEnv() Environ {
	return processEnv{}
}

func (processEnv) Lookup(name string) Lookup {
	v, ok := os.LookupEnv(name)
	return classify(v, ok)
}

func classify(v string, ok bool) Lookup {
	if !ok {
		return Lookup{Status: NotSet}
	}
	if !utf8.ValidString(v) {
		return Lookup{Status: NotUTF8}
	}
	return Lookup{Value: v, Status: Found}
}

// Miss records a reference that was left unexpanded
type Miss struct {
	Name   string
	Text   string // the literal reference, e.g. "${HOME}"
	Status Status
}

// Result is the output of Expand
type Result struct {
	Value  string
	Misses []Miss
}

var refPattern = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*|\{[a-zA-Z_][a-zA-Z0-9_]*\})`)

// Expand replaces $NAME and ${NAME} references in line, left to right in a
// single pass. Substituted text is never re-expanded.
func Expand(line string, env Environ) Result {
	matches := refPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return Result{Value: line}
	}

	var (
		b      strings.Builder
		misses []Miss
		last   int
	)
	b.Grow(len(line))

	for _, m := range matches {
		text := line[m[0]:m[1]]
		name := strings.TrimSuffix(strings.TrimPrefix(line[m[2]:m[3]], "{"), "}")

		b.WriteString(line[last:m[0]])
		if lookup := env.Lookup(name); lookup.Status == Found {
			b.WriteString(lookup.Value)
		} else {
			b.WriteString(text)
			misses = append(misses, Miss{Name: name, Text: text, Status: lookup.Status})
		}
		last = m[1]
	}
	b.WriteString(line[last:])

	return Result{Value: b.String(), Misses: misses}
}
