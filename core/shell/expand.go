package shell

import (
	"os"
	"regexp"
)

var envRegex = regexp.MustCompile(`\$(\w+)`)

// ExpandEnv replaces every $NAME reference with the value of the environment
// variable NAME. References to unset variables are kept literally and a bare
// $ passes through unchanged. There is no escaping mechanism.
func ExpandEnv(line string) string {
	return envRegex.ReplaceAllStringFunc(line, func(match string) string {
		if value, ok := os.LookupEnv(match[1:]); ok {
			return value
		}
		return match
	})
}
