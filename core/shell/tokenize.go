package shell

import "strings"

// tokenize splits a line on runs of whitespace and strips a trailing "&"
// background marker. There is no quoting, so a token can never contain
// whitespace. A blank line yields no tokens.
func tokenize(line string) (args []string, background bool) {
	args = strings.Fields(line)
	if n := len(args); n > 0 && args[n-1] == "&" {
		return args[:n-1], true
	}
	return args, false
}
