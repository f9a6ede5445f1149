package entity

// ConfigKeyInfo describes a single configuration key for the
// "config keys" listing.
type ConfigKeyInfo struct {
	// Key is the dotted path to the key (e.g. "navigation.max_url_size").
	Key string `json:"key" yaml:"key"`

	// Type is the Go type name ("string", "int", ...).
	Type string `json:"type" yaml:"type"`

	Default     string `json:"default" yaml:"default"`
	Description string `json:"description" yaml:"description"`

	// Values lists the accepted values of string enums.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Range describes numeric bounds, e.g. "1-1900".
	Range string `json:"range,omitempty" yaml:"range,omitempty"`

	// Section groups related keys ("Navigation", "Logging").
	Section string `json:"section" yaml:"section"`
}
