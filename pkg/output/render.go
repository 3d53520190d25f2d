package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/pathsd"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Variable is one environment assignment ready to be emitted
type Variable struct {
	Key    string   `json:"key" yaml:"key" toml:"key"`
	Value  string   `json:"value" yaml:"value" toml:"value"`
	Values []string `json:"values" yaml:"values" toml:"values"`
	Dir    string   `json:"dir" yaml:"dir" toml:"dir"`
}

// document wraps the list so every structured format has a top-level table
type document struct {
	Variables []Variable `json:"variables" yaml:"variables" toml:"variables"`
}

// Variables converts collected records into assignments, dropping records
// without values. Order follows records; duplicate keys are kept.
func Variables(records []*pathsd.Record, sep string) []Variable {
	vars := make([]Variable, 0, len(records))
	for _, r := range records {
		value, ok := r.Join(sep)
		if !ok {
			continue
		}
		vars = append(vars, Variable{
			Key:    r.Key(),
			Value:  value,
			Values: r.Values(),
			Dir:    r.Dir(),
		})
	}
	return vars
}

// Render writes vars to w in format f
func Render(w io.Writer, vars []Variable, f Format) error {
	if f.IsStructured() {
		return Encode(w, document{Variables: vars}, f)
	}

	for _, v := range vars {
		var line string
		switch f {
		case FormatEnv:
			line = fmt.Sprintf("%s=%s", v.Key, strconv.Quote(v.Value))
		case FormatSh:
			line = fmt.Sprintf("%s=%s; export %s;", v.Key, singleQuote(v.Value), v.Key)
		case FormatCsh:
			line = fmt.Sprintf("setenv %s %s;", v.Key, singleQuote(v.Value))
		case FormatFish:
			words := make([]string, len(v.Values))
			for i, value := range v.Values {
				words[i] = fishQuote(value)
			}
			line = fmt.Sprintf("set -gx %s %s;", v.Key, strings.Join(words, " "))
		default:
			return errors.Newf(errors.ErrInvalidInput, "unsupported format %s", f)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to write output")
		}
	}
	return nil
}

// Encode writes v as a json, yaml or toml document
func Encode(w io.Writer, v interface{}, f Format) error {
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(v)
	default:
		return errors.Newf(errors.ErrInvalidInput, "%s is not a structured format", f)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render %s", f)
	}
	return nil
}

// singleQuote quotes s for POSIX sh and csh: '...' with ' written as '\''
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote quotes s for fish, where only \ and ' are special inside '...'
func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
