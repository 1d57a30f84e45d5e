package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	sigilerr "github.com/kjsanger/secretshare/pkg/errors"
)

// promptSecret prompts for secret material with hidden input, the same way
// the teacher prompts for a wallet password: nothing is echoed, and a
// newline is written to stderr afterward so the next line of output isn't
// glued to the cursor.
func promptSecret(prompt string) ([]byte, error) {
	out(os.Stderr, "%s", prompt)

	secret, err := term.ReadPassword(syscall.Stdin)
	outln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	if len(secret) == 0 {
		return nil, sigilerr.WithSuggestion(sigilerr.ErrEmptySecret, "secret input was empty")
	}

	return secret, nil
}

// readShareLines reads share wire-format lines either from the named files
// (one share per file) or, if no paths are given, from stdin (one share per
// line). Blank lines are skipped.
func readShareLines(paths []string) ([]string, error) {
	if len(paths) > 0 {
		shares := make([]string, 0, len(paths))
		for _, p := range paths {
			// #nosec G304 -- share file path is operator-supplied CLI input
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, sigilerr.Wrap(err, fmt.Sprintf("read share file %q", p))
			}
			text := strings.TrimSpace(string(data))
			if text != "" {
				shares = append(shares, text)
			}
		}
		return shares, nil
	}

	var shares []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			shares = append(shares, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, sigilerr.Wrap(err, "read shares from stdin")
	}
	return shares, nil
}
