package errors

import "sort"

// ErrorTemplate defines a registered error type. Message is a fmt format
// string filled in by Errorf.
type ErrorTemplate struct {
	Kind       Kind
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Child errors (H001-H009)
	// ============================================

	"H001": {
		Kind:    KindType,
		Message: "%s is not a valid child element",
		Detail:  "Children may be nil, bool, text, integers, elements, fragments, context providers and consumers, values with an HTML() method, sequences of those, or zero-argument functions returning them.",
		DocURL:  "https://htgo.dev/docs/errors/H001",
	},
	"H002": {
		Kind:       KindType,
		Message:    "%s elements cannot have children",
		Detail:     "Void elements such as <img> and <br> have no closing tag and no content.",
		Suggestion: "Put the content next to the element inside a fragment instead.",
		DocURL:     "https://htgo.dev/docs/errors/H002",
	},

	// ============================================
	// Attribute errors (H010-H019)
	// ============================================

	"H010": {
		Kind:    KindType,
		Message: "Attribute key must be a string, got %s",
		DocURL:  "https://htgo.dev/docs/errors/H010",
	},
	"H011": {
		Kind:       KindType,
		Message:    "Attribute value must be a string or an integer, got %s",
		Suggestion: "Format floats and other values with strconv or fmt before passing them.",
		DocURL:     "https://htgo.dev/docs/errors/H011",
	},
	"H012": {
		Kind:    KindType,
		Message: "Class names must be strings, sequences or map[string]bool, got %s",
		DocURL:  "https://htgo.dev/docs/errors/H012",
	},
	"H013": {
		Kind:    KindType,
		Message: "Unsupported attribute argument %s",
		Detail:  "Attribute arguments are an optional leading id/class string, attrs.Map values and attrs.Attr pairs.",
		DocURL:  "https://htgo.dev/docs/errors/H013",
	},

	// ============================================
	// Shorthand errors (H020-H029)
	// ============================================

	"H020": {
		Kind:    KindValue,
		Message: "id/class strings must start with # or ., got %q",
		DocURL:  "https://htgo.dev/docs/errors/H020",
	},
	"H021": {
		Kind:    KindValue,
		Message: "id (#) must be specified before classes (.) in %q",
		DocURL:  "https://htgo.dev/docs/errors/H021",
	},
	"H022": {
		Kind:    KindValue,
		Message: "only one id (#) may be specified in %q",
		DocURL:  "https://htgo.dev/docs/errors/H022",
	},

	// ============================================
	// Render errors (H030-H049)
	// ============================================

	"H030": {
		Kind:    KindLookup,
		Message: "Context value for %q does not exist, requested by %s().",
		Detail:  "The consumer was rendered outside of any provider for this context and the context has no default.",
		DocURL:  "https://htgo.dev/docs/errors/H030",
	},
	"H031": {
		Kind:       KindRuntime,
		Message:    "%s was already consumed",
		Detail:     "A one-shot generator can only be rendered once.",
		Suggestion: "Create the generator inside the render path or use a slice.",
		DocURL:     "https://htgo.dev/docs/errors/H031",
	},
	"H032": {
		Kind:       KindMode,
		Message:    "%s can only be rendered asynchronously",
		Suggestion: "Use AIterChunks or StreamTo instead of String, Render or IterChunks.",
		DocURL:     "https://htgo.dev/docs/errors/H032",
	},
	"H033": {
		Kind:    KindRuntime,
		Message: "lazy child %s failed: %v",
		DocURL:  "https://htgo.dev/docs/errors/H033",
	},

	// ============================================
	// Tag name errors (H050-H059)
	// ============================================

	"H050": {
		Kind:    KindAttribute,
		Message: "%s is not a valid element name. html elements must have all lowercase names",
		DocURL:  "https://htgo.dev/docs/errors/H050",
	},

	// ============================================
	// Tooling errors (H080-H099)
	// ============================================

	"H080": {
		Kind:    KindConfig,
		Message: "Invalid configuration",
		DocURL:  "https://htgo.dev/docs/errors/H080",
	},
	"H083": {
		Kind:       KindConfig,
		Message:    "no %s found in %s",
		Suggestion: "Run 'htgo init' to write a default configuration, or omit --config to use the defaults",
		DocURL:     "https://htgo.dev/docs/errors/H083",
	},
	"H081": {
		Kind:    KindCLI,
		Message: "unknown page %q",
		DocURL:  "https://htgo.dev/docs/errors/H081",
	},
	"H082": {
		Kind:    KindLookup,
		Message: "template %q does not exist",
		DocURL:  "https://htgo.dev/docs/errors/H082",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds or replaces a template. It is meant for init-time use.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
