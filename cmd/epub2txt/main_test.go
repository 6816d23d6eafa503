package main

import (
	"testing"
)

func TestReadCLIOptions_Defaults(t *testing.T) {
	cmd := newRootCmd()
	opts, err := readCLIOptions(cmd, []string{"./input/book.epub"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}

	if opts.InputPath != "./input/book.epub" {
		t.Fatalf("InputPath = %q, want %q", opts.InputPath, "./input/book.epub")
	}
	if opts.OutputPath != "./input/book.txt" {
		t.Fatalf("OutputPath = %q, want %q", opts.OutputPath, "./input/book.txt")
	}
	if opts.CoverPath != "" {
		t.Fatalf("CoverPath = %q, want empty", opts.CoverPath)
	}
	if opts.Quiet {
		t.Fatal("Quiet = true, want false by default")
	}
}

func TestReadCLIOptions_CustomFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{
		"--output", "./out/custom.txt",
		"--cover", "./out/cover.jpg",
		"--quiet",
	}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	opts, err := readCLIOptions(cmd, []string{"./input/book.epub"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}

	if opts.OutputPath != "./out/custom.txt" {
		t.Fatalf("OutputPath = %q, want %q", opts.OutputPath, "./out/custom.txt")
	}
	if opts.CoverPath != "./out/cover.jpg" {
		t.Fatalf("CoverPath = %q, want %q", opts.CoverPath, "./out/cover.jpg")
	}
	if !opts.Quiet {
		t.Fatal("Quiet = false, want true")
	}
}

func TestReadCLIOptions_InputWithoutExtension(t *testing.T) {
	cmd := newRootCmd()
	opts, err := readCLIOptions(cmd, []string{"book"})
	if err != nil {
		t.Fatalf("readCLIOptions() error = %v", err)
	}
	if opts.OutputPath != "book.txt" {
		t.Fatalf("OutputPath = %q, want %q", opts.OutputPath, "book.txt")
	}
}
