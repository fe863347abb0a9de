// Package htmldot is the top-level facade: it wires the character
// stream, knowledge base, tokeniser, and tree constructor into one
// Parse/ParseFragment entry point, and implements the canonical
// serializer (§6.6).
package htmldot

import (
	"os"

	"github.com/arbor-dot/htmldot/domerr"
	"gopkg.in/yaml.v3"
)

// Config is the plain configuration record controlling a parse (§9.1's
// "plain configuration record" redesign note). It carries no behaviour
// of its own — Parser reads it once at construction.
type Config struct {
	// ComplianceLevel governs which parse errors the Reporter surfaces
	// and whether Strict promotes attribute-legality violations to hard
	// rejections (§4.9, §6.5).
	ComplianceLevel domerr.ComplianceLevel

	// ScriptingEnabled controls the tree constructor's `noscript`
	// handling: when true, `noscript` content is treated as RAWTEXT
	// rather than parsed as markup (§4.7's InHead mode).
	ScriptingEnabled bool

	// IframeSrcdoc marks this parse as processing an `iframe` document's
	// `srcdoc` attribute, which changes quirks-mode classification: a
	// srcdoc document is never put into quirks mode regardless of its
	// DOCTYPE (WHATWG "iframe srcdoc document" concept).
	IframeSrcdoc bool
}

// Option configures a Config at construction, the way the teacher's
// Cobra commands wire flags into a package-level struct before handing
// it to tokenizer.NewTokenizer.
type Option func(*Config)

// WithComplianceLevel sets the compliance level (default domerr.Off).
func WithComplianceLevel(level domerr.ComplianceLevel) Option {
	return func(c *Config) { c.ComplianceLevel = level }
}

// WithScripting toggles scripting-aware `noscript` handling (default
// false, matching a scripting-disabled user agent).
func WithScripting(enabled bool) Option {
	return func(c *Config) { c.ScriptingEnabled = enabled }
}

// WithIframeSrcdoc marks the parse as an iframe srcdoc document.
func WithIframeSrcdoc(enabled bool) Option {
	return func(c *Config) { c.IframeSrcdoc = enabled }
}

// NewConfig builds a Config from the given options, starting from the
// zero value (ComplianceLevel Off, scripting disabled).
func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// configFile is the on-disk shape LoadConfigYAML reads, kept separate
// from Config so the YAML field names can stay lowercase/snake without
// dragging struct tags onto the in-memory type everything else uses.
type configFile struct {
	ComplianceLevel  string `yaml:"compliance_level"`
	ScriptingEnabled bool   `yaml:"scripting_enabled"`
	IframeSrcdoc     bool   `yaml:"iframe_srcdoc"`
}

// LoadConfigYAML reads a Config from a YAML file, the way the CLI's
// `--config` flag lets a caller pin ComplianceLevel/ScriptingEnabled
// without repeating flags on every invocation.
func LoadConfigYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, err
	}
	return Config{
		ComplianceLevel:  parseComplianceLevel(f.ComplianceLevel),
		ScriptingEnabled: f.ScriptingEnabled,
		IframeSrcdoc:     f.IframeSrcdoc,
	}, nil
}

func parseComplianceLevel(s string) domerr.ComplianceLevel {
	switch s {
	case "PARTIAL", "partial":
		return domerr.Partial
	case "STRICT", "strict":
		return domerr.Strict
	default:
		return domerr.Off
	}
}
