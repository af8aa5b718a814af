package keygate

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnknownKey       = "unknown_key"
	CodeInvalidValue     = "invalid_value"
	CodeDuplicateKey     = "duplicate_key"
	CodeUnknownValidator = "unknown_validator"
	CodeBadParams        = "bad_params"
)

// Issue represents a single acceptance or catalog-construction entry.
type Issue struct {
	Key     string // Configuration key the issue refers to.
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"value":"maybe"}) for
	// i18n and observability.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_value at font_scale
		fmt.Fprintf(b, "%s at %s", it.Code, it.Key)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
