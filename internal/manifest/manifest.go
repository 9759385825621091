// Package manifest resolves the document title from the repository's own
// build manifest, so the generated sheet names the repo it lives in.
package manifest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ModuleName reads the `module` directive from the go.mod at path and
// returns the last element of the module path (the repository name).
func ModuleName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		modulePath := strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "module ")), `"`)
		if modulePath == "" {
			break
		}
		if idx := strings.LastIndex(modulePath, "/"); idx >= 0 {
			modulePath = modulePath[idx+1:]
		}
		return modulePath, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return "", fmt.Errorf("no module directive in %s", path)
}
