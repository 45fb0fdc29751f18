// Package errors provides coded, structured errors for vfiber.
//
// Every error the engine, the configuration loader and the live server
// report carries a short code (e.g. "R003") registered in this package. The
// code maps to a category, a short message and a longer explanation, so a
// failure surfacing from deep inside a render pass can be recognised by
// callers without string matching:
//
//	if errors.HasCode(err, errors.CodeHostFailure) {
//	    // the host adapter rejected a mutation
//	}
//
// # Error Categories
//
//   - runtime: hook misuse during or outside a render pass
//   - render: malformed element trees
//   - host: host adapter failures
//   - usage: API sequencing violations
//   - config: configuration file problems
//   - session: live server protocol errors
//
// # Usage
//
//	err := errors.New(errors.CodeConfigParse).
//	    WithDetail("line 3: unknown field").
//	    WithSuggestion("Check that vfiber.yaml is valid YAML")
//
//	logger.Warn("config rejected", "error", err.FormatCompact())
//	errors.Fprint(os.Stderr, err, errors.StyleFromEnv())
package errors
