package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/arbor-dot/htmldot/htmldot"
)

func main() {
	// Paths are relative to the repository root.
	inputs, err := filepath.Glob("htmldot/testdata/*.html")
	if err != nil {
		log.Fatalf("Failed to glob files: %v", err)
	}

	for _, inputFile := range inputs {
		if strings.Contains(inputFile, "_golden") {
			continue
		}
		outputFile := strings.TrimSuffix(inputFile, ".html") + "_golden.html"

		fmt.Printf("Processing %s -> %s\n", inputFile, outputFile)
		inputBytes, err := os.ReadFile(inputFile)
		if err != nil {
			log.Printf("Failed to read input file %s: %v", inputFile, err)
			continue
		}

		doc, _ := htmldot.Parse(string(inputBytes))
		var b strings.Builder
		if err := htmldot.Serialize(&b, doc); err != nil {
			log.Printf("Serialization failed for %s: %v", inputFile, err)
			continue
		}

		if err := os.WriteFile(outputFile, []byte(b.String()), 0644); err != nil {
			log.Printf("Failed to write output file %s: %v", outputFile, err)
			continue
		}
	}

	fmt.Println("Done. Golden files updated.")
}
