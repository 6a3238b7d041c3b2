package bundle

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// generate emits the Go source for the embedded templates and runs it
// through the imports formatter so the output matches gofmt.
func generate(pkg string, templates []loadedTemplate) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by umbra-bundle. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	for _, t := range templates {
		fmt.Fprintf(&b, "// %s holds the markup of %s.\n", t.Name, t.File)
		fmt.Fprintf(&b, "const %s = %s\n\n", t.Name, quote(t.Markup))
	}

	src, err := imports.Process("templates_gen.go", []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("bundle: format generated source: %w", err)
	}
	return src, nil
}

// quote prefers a raw string literal for readability, falling back to a
// quoted literal when the markup itself contains a backtick.
func quote(s string) string {
	if !strings.Contains(s, "`") && !strings.Contains(s, "\r") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
