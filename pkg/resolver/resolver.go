// Package resolver substitutes /TOKEN/ placeholders in template bodies
// with party data. Tokens are exact delimited strings resolved through a
// fixed binding table; the template is scanned in a single pass so a
// token whose name prefixes another can never partially match. Unknown
// tokens pass through as literal text and generation never fails: a
// missing field renders as the blank-fill sentinel for manual
// correction.
package resolver

import (
	"strings"

	"github.com/advocflow/docgen/pkg/party"
)

// BlankFill is the sentinel shown when a field has no value yet. The
// length is fixed at 16 underscores; tests and hand-tuned templates rely
// on it.
const BlankFill = "________________"

// emphasis markers wrap every resolved value exactly once so filled
// fields stand out in the printed document.
const (
	emphasisOpen  = `<strong class="doc-value">`
	emphasisClose = `</strong>`
)

// Resolver substitutes placeholder tokens using a fixed binding table.
// The zero value is not usable; call New.
type Resolver struct {
	bindings map[string]binding
}

// New returns a Resolver with the standard binding table.
func New() *Resolver {
	return &Resolver{bindings: standardBindings()}
}

// Resolve substitutes every known token in tpl with the value resolved
// from data. The function is pure: identical inputs always produce
// identical output.
func (r *Resolver) Resolve(tpl string, data party.Data) string {
	var out strings.Builder
	out.Grow(len(tpl) + len(tpl)/4)

	for i := 0; i < len(tpl); {
		open := strings.IndexByte(tpl[i:], '/')
		if open < 0 {
			out.WriteString(tpl[i:])
			break
		}
		open += i
		out.WriteString(tpl[i:open])

		close := strings.IndexByte(tpl[open+1:], '/')
		if close < 0 {
			out.WriteString(tpl[open:])
			break
		}
		close += open + 1

		name := tpl[open+1 : close]
		b, ok := r.bindings[name]
		if !ok {
			// Not a placeholder (literal slash or a template typo):
			// emit the opening slash and rescan from the next byte, so
			// the closing slash may still open a real token.
			out.WriteByte('/')
			i = open + 1
			continue
		}

		out.WriteString(render(b, data))
		i = close + 1
	}
	return out.String()
}

// Unknown lists candidate tokens in tpl that look like placeholders but
// have no binding. A candidate is the text between two slashes consisting
// only of uppercase letters and spaces; ordinary prose around literal
// slashes does not qualify. Hosts may log the result as a data-quality
// warning.
func (r *Resolver) Unknown(tpl string) []string {
	var unknown []string
	seen := map[string]struct{}{}

	for i := 0; i < len(tpl); {
		open := strings.IndexByte(tpl[i:], '/')
		if open < 0 {
			break
		}
		open += i
		close := strings.IndexByte(tpl[open+1:], '/')
		if close < 0 {
			break
		}
		close += open + 1

		name := tpl[open+1 : close]
		if _, ok := r.bindings[name]; ok {
			i = close + 1
			continue
		}
		if looksLikeToken(name) {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				unknown = append(unknown, name)
			}
			i = close + 1
			continue
		}
		i = open + 1
	}
	return unknown
}

func looksLikeToken(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
		case r == ' ' || r == '_':
		case r == 'Ã' || r == 'Á' || r == 'À' || r == 'Â' || r == 'Ç' ||
			r == 'É' || r == 'Ê' || r == 'Í' || r == 'Ó' || r == 'Ô' ||
			r == 'Õ' || r == 'Ú':
		default:
			return false
		}
	}
	return true
}

func render(b binding, data party.Data) string {
	value, filled := b.resolve(data)
	if !filled {
		if b.optional {
			return ""
		}
		value = BlankFill
	}
	if b.prefix != "" {
		value = b.prefix + value
	}
	return emphasize(value)
}

// emphasize wraps a value in the emphasis marker, once. Values that were
// substituted into an earlier template pass already carry the marker and
// must not be nested.
func emphasize(v string) string {
	if strings.Contains(v, emphasisOpen) {
		return v
	}
	return emphasisOpen + v + emphasisClose
}

var defaultResolver = New()

// Resolve substitutes tokens using the standard binding table.
func Resolve(tpl string, data party.Data) string {
	return defaultResolver.Resolve(tpl, data)
}

// Unknown lists unbound placeholder candidates using the standard table.
func Unknown(tpl string) []string {
	return defaultResolver.Unknown(tpl)
}
