package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/castgrab/castgrab/color"
	"github.com/castgrab/castgrab/constant"
	"github.com/castgrab/castgrab/icon"
	"github.com/castgrab/castgrab/key"
	"github.com/castgrab/castgrab/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Field is a registered setting.
type Field struct {
	Key         string
	Value       any
	Description string

	check func(value any) error
}

var fields = []Field{
	{
		Key:         key.DownloadOutputDir,
		Value:       "",
		Description: "Base directory for downloaded feeds.\nA folder named after each feed title is created inside it.\nEmpty means the current working directory",
	},
	{
		Key:         key.DownloadChunks,
		Value:       8,
		Description: "Number of parallel ranged requests used for a single episode",
		check: func(value any) error {
			if value.(int) < 1 {
				return errors.New("must be at least 1")
			}
			return nil
		},
	},
	{
		Key:         key.NetworkTimeout,
		Value:       "10m",
		Description: "Timeout for a single HTTP request, as a Go duration (e.g. 30s, 10m)",
		check: func(value any) error {
			d, err := time.ParseDuration(value.(string))
			if err != nil {
				return err
			}
			if d <= 0 {
				return errors.New("must be positive")
			}
			return nil
		},
	},
	{
		Key:         key.IconsVariant,
		Value:       "plain",
		Description: "Icons variant.\nAvailable options are: emoji, nerd (nerd-font required), plain, squares",
		check: func(value any) error {
			if !slices.Contains(icon.AvailableVariants(), value.(string)) {
				return fmt.Errorf("must be one of %s", strings.Join(icon.AvailableVariants(), ", "))
			}
			return nil
		},
	},
	{
		Key:         key.LogsWrite,
		Value:       false,
		Description: "Append every run's log lines to a dated file in the logs directory",
	},
	{
		Key:         key.LogsLevel,
		Value:       "info",
		Description: "Lowest level written to log files.\nAvailable options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace",
		check: func(value any) error {
			_, err := logrus.ParseLevel(value.(string))
			return err
		},
	},
	{
		Key:         key.LogsJson,
		Value:       false,
		Description: "Use json format for log files",
	},
	{
		Key:         key.CliColored,
		Value:       true,
		Description: "Enable colored help output",
	},
}

// Fields returns every registered setting, ordered by key.
func Fields() []Field {
	sorted := slices.Clone(fields)
	slices.SortFunc(sorted, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return sorted
}

// Lookup returns the setting registered under name.
func Lookup(name string) (Field, bool) {
	return lo.Find(fields, func(f Field) bool {
		return f.Key == name
	})
}

// Suggest returns the registered key closest to name.
func Suggest(name string) string {
	return lo.MinBy(lo.Map(fields, func(f Field, _ int) string { return f.Key }), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

// Parse converts raw into the type of the field's default and validates it.
func (f Field) Parse(raw string) (any, error) {
	var (
		value any
		err   error
	)

	switch f.Value.(type) {
	case int:
		value, err = strconv.Atoi(strings.TrimSpace(raw))
	case bool:
		value, err = strconv.ParseBool(strings.TrimSpace(raw))
	default:
		value = raw
	}
	if err != nil {
		return nil, fmt.Errorf("%s expects %s: %w", f.Key, f.Type(), err)
	}

	if f.check != nil {
		if err := f.check(value); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", f.Key, raw, err)
		}
	}
	return value, nil
}

// Env returns the environment variable overriding this field.
func (f Field) Env() string {
	return strings.ToUpper(constant.Castgrab + "_" + envReplacer.Replace(f.Key))
}

// Type names the kind of value the field holds.
func (f Field) Type() string {
	switch f.Value.(type) {
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "string"
	}
}

// MarshalJSON includes the effective value next to the default.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Type        string `json:"type"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Type:        f.Type(),
		Description: f.Description,
	})
}

// Pretty renders the field for the terminal.
func (f Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

var prettyTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint": style.Faint,
	"label": style.Fg(color.Blue),
	"name":  style.Fg(color.Purple),
	"value": func(k string) string { return highlight(viper.Get(k)) },
	"hl":    highlight,
}).Parse(`{{ name .Key }} {{ faint .Env }}
{{ faint .Description }}
{{ label "Value:" }}   {{ value .Key }}
{{ label "Default:" }} {{ hl .Value }}
{{ label "Type:" }}    {{ .Type }}`))

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}
