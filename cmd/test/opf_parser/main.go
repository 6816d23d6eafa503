// Test program for the OPF parser.
//
// Usage:
//   go run ./cmd/test/opf_parser/main.go <epub-file-path>
//
// This program will:
// - Open the EPUB file
// - Parse the OPF file
// - Display metadata (title, author, language, etc.)
// - List manifest items by media type
// - Show spine order
// - Show cover image if found

package main

import (
	"fmt"
	"os"

	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <epub-file-path>\n", os.Args[0])
		os.Exit(1)
	}

	epubPath := os.Args[1]

	fmt.Println("=== EPUB OPF Parser Test ===")
	fmt.Printf("File: %s\n\n", epubPath)

	reader, err := epub.Open(epubPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening EPUB: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	fmt.Printf("✓ EPUB opened successfully\n")
	fmt.Printf("OPF Path: %s\n\n", reader.OPFPath())

	opfContent, err := reader.ReadFile(reader.OPFPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading OPF file: %v\n", err)
		os.Exit(1)
	}

	opf, err := epub.ParseOPF(opfContent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OPF: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ OPF parsed successfully")

	fmt.Println("--- Metadata ---")
	fmt.Printf("Title:      %s\n", opf.Metadata.Title)
	fmt.Printf("Author:     %s\n", opf.Metadata.Creator)
	fmt.Printf("Language:   %s\n", opf.Metadata.Language)
	fmt.Printf("Identifier: %s\n", opf.Metadata.Identifier)
	if opf.Metadata.Publisher != "" {
		fmt.Printf("Publisher:  %s\n", opf.Metadata.Publisher)
	}

	fmt.Printf("\n--- Manifest ---\n")
	fmt.Printf("Total items: %d\n\n", len(opf.Manifest))

	mediaTypes := make(map[string]int)
	for _, item := range opf.Manifest {
		mediaTypes[item.MediaType]++
	}

	fmt.Println("Items by media type:")
	for mediaType, count := range mediaTypes {
		fmt.Printf("  %s: %d\n", mediaType, count)
	}

	if cover := opf.DetectCover(); cover != nil {
		fmt.Printf("\nCover Image: %s (via %s)\n", cover.Href, cover.DetectionMethod)
	} else {
		fmt.Println("\nCover Image: (not found)")
	}

	fmt.Printf("\n--- Spine ---\n")
	fmt.Printf("Total items: %d\n\n", len(opf.Spine))

	fmt.Println("Reading order:")
	for i, spineItem := range opf.Spine {
		item := opf.Manifest[spineItem.IDRef]
		linear := "yes"
		if !spineItem.Linear {
			linear = "no"
		}
		fmt.Printf("  %d. %s (linear: %s)\n", i+1, item.Href, linear)
	}

	fmt.Println("\n--- Special Items ---")
	hasSpecial := false
	for _, id := range opf.ManifestOrder {
		item := opf.Manifest[id]
		if len(item.Properties) > 0 {
			hasSpecial = true
			fmt.Printf("  %s: %s (properties: %v)\n", id, item.Href, item.Properties)
		}
	}
	if !hasSpecial {
		fmt.Println("  (no items with special properties)")
	}

	fmt.Println("\n=== Test Completed Successfully ===")
}
