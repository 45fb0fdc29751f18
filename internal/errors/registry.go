package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// Registered error codes.
const (
	CodeHookOutsideRender = "R001"
	CodeMalformedElement  = "R002"
	CodeHostFailure       = "R003"
	CodeNoContainer       = "R004"

	CodeConfigNotFound = "C001"
	CodeConfigParse    = "C002"
	CodeConfigInvalid  = "C003"

	CodeSessionProtocol = "S001"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Engine Errors (R001-R099)
	// ============================================

	CodeHookOutsideRender: {
		Category: CategoryRuntime,
		Message:  "Hook called outside component render",
		Detail:   "Hooks may only be called with the Scope passed to a function component, while that component is rendering.",
	},
	CodeMalformedElement: {
		Category: CategoryRender,
		Message:  "Malformed element type",
		Detail:   "An element's type must be a tag name or a function component. The subtree cannot be rendered.",
	},
	CodeHostFailure: {
		Category: CategoryHost,
		Message:  "Host adapter failure",
		Detail:   "The host adapter rejected a node creation or mutation. The in-flight render pass was abandoned.",
	},
	CodeNoContainer: {
		Category: CategoryUsage,
		Message:  "Render called without a container",
		Detail:   "Render needs a host node to attach the rendered tree to.",
	},

	// ============================================
	// Config Errors (C001-C099)
	// ============================================

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No vfiber.yaml, vfiber.yml or vfiber.json was found.",
	},
	CodeConfigParse: {
		Category: CategoryConfig,
		Message:  "Configuration file could not be parsed",
		Detail:   "The configuration file is not valid YAML or JSON.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is outside its allowed range.",
	},

	// ============================================
	// Session Errors (S001-S099)
	// ============================================

	CodeSessionProtocol: {
		Category: CategorySession,
		Message:  "Invalid session message",
		Detail:   "A client message could not be decoded or referenced an unknown node.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
