// Test program for the EPUB ZIP reader.
//
// Usage:
//
//	go run ./cmd/test/epub_reader/main.go <epub-file> (<content-filename> ...)
//
// This program exercises:
// - Opening EPUB files (ZIP archive)
// - Resolving the OPF path from container.xml
// - Listing all files in the EPUB
// - Reading entry contents
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/test/epub_reader/main.go <epub-file> (<content-filename> ...)")
		os.Exit(1)
	}

	epubPath := os.Args[1]
	filePaths := os.Args[2:]

	fmt.Printf("Opening EPUB file: %s\n", epubPath)
	reader, err := epub.Open(epubPath)
	if err != nil {
		log.Fatalf("Failed to open EPUB: %v", err)
	}
	defer reader.Close()

	fmt.Printf("✓ EPUB opened successfully\n")
	fmt.Printf("OPF Path: %s\n", reader.OPFPath())
	fmt.Printf("OPF Dir:  %q\n\n", reader.OPFDir())

	files := reader.Files()
	fmt.Printf("Total files: %d\n", len(files))
	fmt.Println("\nFile list:")
	for name := range files {
		fmt.Printf("  - %s\n", name)
	}

	fmt.Println("\nReading OPF file...")
	opfContent, err := reader.ReadFile(reader.OPFPath())
	if err != nil {
		log.Fatalf("Failed to read OPF: %v", err)
	}
	fmt.Printf("✓ OPF file read successfully (%d bytes)\n", len(opfContent))

	for _, filePath := range filePaths {
		fmt.Printf("\nReading content file: %s\n", filePath)
		content, err := reader.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read content file %s: %v", filePath, err)
		}
		fmt.Printf("✓ Content file %s read successfully (%d bytes)\n", filePath, len(content))
		fmt.Printf("Content:\n%s\n", string(content))
	}

	fmt.Println("\n✓ All tests passed!")
}
