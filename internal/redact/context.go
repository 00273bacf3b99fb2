package redact

import (
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// secretKeywords classify an environment variable as secret-bearing when its
// name contains any of them, case-insensitively.
var secretKeywords = []string{"username", "password", "email", "secret", "token", "key"}

// customPrefix marks user-defined patterns: the value of any BIIP_* variable
// is scrubbed wherever it appears, regardless of the keyword test.
const customPrefix = "BIIP_"

// SecretLiteral is a harvested string value to scrub by exact substring
// search. The value is unexported and must never appear in diagnostics; only
// match positions are observable.
type SecretLiteral struct {
	value    string
	category Category
}

// Context holds the process-scoped facts some detectors need: the invoking
// user's login name and home directory, and the secret literals harvested
// from the environment. It is built once per invocation and read-only
// thereafter, so any number of redaction calls may share it.
type Context struct {
	Username string
	HomeDir  string
	secrets  []SecretLiteral
}

// BuildContext constructs a Context from an environment mapping, optional
// .env file contents, and the user identity. It performs no I/O; callers
// materialize all inputs. Malformed .env content contributes nothing.
//
// A variable whose name starts with BIIP_ classifies as a custom pattern; a
// name containing a secret keyword classifies as a secret. Empty and
// whitespace-only values are ignored. The harvested literals are ordered
// longest value first so a literal that is a substring of a longer one can
// never split the longer match.
func BuildContext(env map[string]string, dotenv string, username, homeDir string) *Context {
	vars := make(map[string]string, len(env))
	if dotenv != "" {
		if parsed, err := godotenv.Unmarshal(dotenv); err == nil {
			for k, v := range parsed {
				vars[k] = v
			}
		}
	}
	for k, v := range env {
		vars[k] = v
	}

	seen := make(map[string]bool)
	var secrets []SecretLiteral
	for name, value := range vars {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		cat, ok := classifyVar(name)
		if !ok {
			continue
		}
		// Custom classification wins when the same value occurs twice.
		if seen[value] {
			if cat == CategoryCustom {
				for i := range secrets {
					if secrets[i].value == value {
						secrets[i].category = CategoryCustom
					}
				}
			}
			continue
		}
		seen[value] = true
		secrets = append(secrets, SecretLiteral{value: value, category: cat})
	}

	sort.Slice(secrets, func(i, j int) bool {
		if len(secrets[i].value) != len(secrets[j].value) {
			return len(secrets[i].value) > len(secrets[j].value)
		}
		return secrets[i].value < secrets[j].value
	})

	return &Context{
		Username: strings.TrimSpace(username),
		HomeDir:  strings.TrimRight(strings.TrimSpace(homeDir), "/"),
		secrets:  secrets,
	}
}

func classifyVar(name string) (Category, bool) {
	if strings.HasPrefix(name, customPrefix) {
		return CategoryCustom, true
	}
	lower := strings.ToLower(name)
	for _, kw := range secretKeywords {
		if strings.Contains(lower, kw) {
			return CategorySecret, true
		}
	}
	return "", false
}

// SecretCount returns how many distinct literals were harvested. Safe to log.
func (c *Context) SecretCount() int { return len(c.secrets) }
