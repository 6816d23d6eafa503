package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akumaenjeru/Epub2Txt/internal/converter"
)

// cliOptions holds the resolved command-line options for one invocation.
type cliOptions struct {
	InputPath  string
	OutputPath string
	CoverPath  string
	Quiet      bool
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epub2txt",
		Short: "Convert EPUB files to plain text",
		Long: `epub2txt is a command-line tool that extracts the narrative content
of an EPUB ebook into a single plain text file.

Table-of-contents documents are skipped heuristically, chapters are
converted in spine order, and the result is normalized plain text with
paragraph breaks preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readCLIOptions(cmd, args)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file path (default: input with .txt extension)")
	cmd.Flags().String("cover", "", "Also extract the cover image as JPEG to this path")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")

	return cmd
}

// readCLIOptions resolves flags and defaults into cliOptions.
func readCLIOptions(cmd *cobra.Command, args []string) (cliOptions, error) {
	opts := cliOptions{InputPath: args[0]}

	var err error
	if opts.OutputPath, err = cmd.Flags().GetString("output"); err != nil {
		return opts, err
	}
	if opts.CoverPath, err = cmd.Flags().GetString("cover"); err != nil {
		return opts, err
	}
	if opts.Quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return opts, err
	}

	if opts.OutputPath == "" {
		opts.OutputPath = strings.TrimSuffix(opts.InputPath, filepath.Ext(opts.InputPath)) + ".txt"
	}

	return opts, nil
}

func run(opts cliOptions) error {
	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var onProgress converter.ProgressFunc
	if !opts.Quiet {
		onProgress = func(p converter.Progress) {
			log.Printf("[%3d%%] %s", p.Percent, p.Message)
		}
	}

	p := converter.NewPipeline(converter.Options{
		Filename:   filepath.Base(opts.InputPath),
		OnProgress: onProgress,
	})

	doc, err := p.Convert(data)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(opts.OutputPath, []byte(doc.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Printf("Done: %s (%q by %s, %d characters)", opts.OutputPath, doc.Title, doc.Author, doc.Size)

	if opts.CoverPath != "" {
		if err := writeCover(data, opts.CoverPath); err != nil {
			log.Printf("warning: cover extraction failed: %v", err)
		}
	}

	return nil
}

// writeCover re-opens the archive and extracts the cover thumbnail.
func writeCover(data []byte, coverPath string) error {
	cover, err := converter.ExtractCoverFromArchive(filepath.Base(coverPath), data, 0)
	if err != nil {
		return err
	}
	if err := os.WriteFile(coverPath, cover, 0o644); err != nil {
		return fmt.Errorf("failed to write cover: %w", err)
	}
	log.Printf("Cover: %s", coverPath)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
