package startup

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{token}} markers in a startup template. Tokens
// may be dotted panel paths; they still resolve against flat environment
// names at container start.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// MissingVariableError is returned when a template references an environment
// variable that is not set.
type MissingVariableError struct {
	Variable string
}

func (e MissingVariableError) Error() string {
	return "startup template references unset variable " + e.Variable
}

// Snapshot converts an os.Environ style slice into a lookup map.
func Snapshot(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// Resolve replaces every {{token}} in template with its environment value.
// Literal text, including $-style references meant for the shell, passes
// through untouched. A referenced but unset variable fails the resolution.
func Resolve(template string, env map[string]string) (string, error) {
	return resolve(template, env, false)
}

// ResolveLenient substitutes the empty string for unset variables, matching
// the historical shell entrypoints which expanded them silently.
func ResolveLenient(template string, env map[string]string) string {
	out, _ := resolve(template, env, true)
	return out
}

func resolve(template string, env map[string]string, lenient bool) (string, error) {
	var missing *MissingVariableError

	out := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		token := placeholderPattern.FindStringSubmatch(m)[1]
		if v, ok := lookup(env, token); ok {
			return v
		}
		if !lenient && missing == nil {
			missing = &MissingVariableError{Variable: token}
		}
		return ""
	})

	if missing != nil {
		return "", *missing
	}
	return out, nil
}

// lookup tries the literal token first, then the flattened name the panel
// exports for dotted paths.
func lookup(env map[string]string, token string) (string, bool) {
	if v, ok := env[token]; ok {
		return v, true
	}
	if strings.ContainsAny(token, ".-") {
		flat := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(token))
		if v, ok := env[flat]; ok {
			return v, true
		}
	}
	return "", false
}
