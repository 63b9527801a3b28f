package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/framecast/framecast/color"
	"github.com/framecast/framecast/constant"
	"github.com/framecast/framecast/key"
	"github.com/framecast/framecast/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored representation of the field, wrapping the description at width columns.
func (f *Field) Pretty(width int) string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, struct {
		*Field
		Wrapped string
	}{f, wordwrap.String(f.Description, width)}))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Framecast + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SourceURL, "", "Source page to resolve.\nUpdated by \"framecast source set\" or POST /update-url")
	register(key.SourcePrefix, constant.SourcePrefix, "Source pages must start with this prefix")
	register(key.ServerHost, "127.0.0.1", "Address the HTTP server binds to")
	register(key.ServerPort, 3000, "Port the HTTP server listens on")
	register(key.ResolverEngine, "rod", "Engine used to load source pages.\nAvailable options are: rod (headless chromium), static (markup only, no browser)")
	register(key.ResolverMarker, constant.ProviderMarker, "The embedded frame's src must contain this fragment")
	register(key.ResolverLaunchTimeout, "30s", "Maximum time to wait for the browser to start")
	register(key.ResolverNavigationTimeout, "20s", "Maximum time to wait for the source page DOM.\nMust be shorter than the launch timeout")
	register(key.ResolverBrowserBin, "", "Path to a chromium executable.\nLooked up automatically if empty")
	register(key.CacheTTL, "1h", "How long a resolved player stays fresh")
	register(key.CacheOnCorrupt, "fail", "What to do with an unreadable cache file.\nAvailable options are: fail, reset")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsStderr, false, "Mirror logs to stderr")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"blue":     style.Fg(color.Blue),
	"purple":   style.Fg(color.Purple),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Wrapped }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
