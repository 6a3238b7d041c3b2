// umbra-bundle reads a TOML manifest of HTML templates and generates a
// Go source file of markup-string constants for component constructors.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/vcrobe/umbra/bundle"
)

func main() {
	manifest := flag.String("manifest", "bundle.toml", "Path to the bundle manifest.")
	flag.Parse()

	if err := bundle.Run(*manifest); err != nil {
		log.Fatalf("Bundling failed: %v", err)
	}

	fmt.Printf("Bundled templates from %s\n", *manifest)
}
