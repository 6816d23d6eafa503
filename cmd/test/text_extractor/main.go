// Test program for the markup-to-text converter.
//
// Usage:
//
//	go run ./cmd/test/text_extractor/main.go <epub-file> [spine-index]
//
// Runs the full pipeline, then extracts and prints the plain text of a
// single spine item (default: first).
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/akumaenjeru/Epub2Txt/internal/converter"
	"github.com/akumaenjeru/Epub2Txt/internal/epub"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/test/text_extractor/main.go <epub-file> [spine-index]")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	index := 0
	if len(os.Args) > 2 {
		index, err = strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid spine index: %v", err)
		}
	}

	p := converter.NewPipeline(converter.Options{
		Filename: os.Args[1],
		OnProgress: func(pr converter.Progress) {
			fmt.Printf("[%3d%%] %s\n", pr.Percent, pr.Message)
		},
	})

	doc, err := p.Convert(data)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("\nTitle:  %s\nAuthor: %s\nSize:   %d characters\n", doc.Title, doc.Author, doc.Size)

	reader, err := epub.NewReader(os.Args[1], data)
	if err != nil {
		log.Fatalf("Failed to reopen archive: %v", err)
	}
	defer reader.Close()

	opfData, err := reader.ReadFile(reader.OPFPath())
	if err != nil {
		log.Fatalf("Failed to read OPF: %v", err)
	}
	opf, err := epub.ParseOPF(opfData)
	if err != nil {
		log.Fatalf("Failed to parse OPF: %v", err)
	}

	if index < 0 || index >= len(opf.Spine) {
		log.Fatalf("Spine index %d out of range (spine has %d items)", index, len(opf.Spine))
	}

	item := opf.Manifest[opf.Spine[index].IDRef]
	fmt.Printf("\nSpine item %d: %s (id=%s, properties=%v)\n", index, item.Href, item.ID, item.Properties)

	content, err := reader.ReadFile(reader.OPFDir() + item.Href)
	if err != nil {
		log.Fatalf("Failed to read item: %v", err)
	}

	text, err := converter.ExtractText(content)
	if err != nil {
		log.Fatalf("Failed to extract text: %v", err)
	}

	fmt.Println("\n--- Extracted text ---")
	fmt.Println(text)
}
