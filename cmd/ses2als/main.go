package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/simonhull/sessionfile"
	"github.com/simonhull/sessionfile/internal/als"
)

func main() {
	tmplDir := flag.String("t", "", "Use the templates in this directory instead of the standard templates.")
	outPath := flag.String("o", "", "File where to write the Live set. Its directory is created if needed. By default, the set is written to standard output.")
	sampleDir := flag.String("s", "", "Directory, relative to the Live set, where the referenced audio files are located.")
	safe := flag.Bool("n", false, "Never overwrite files; give an error if the output file already exists.")
	verbose := flag.Bool("v", false, "Log decoding and conversion steps to standard error.")
	versionFlag := flag.Bool("version", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(sessionfile.GetBuildInfo())
		os.Exit(0)
	}
	if flag.NArg() != 1 || *help {
		flag.Usage()
		if *help {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := []als.Option{als.WithLogger(logger), als.WithSampleDir(*sampleDir)}
	var conv *als.Converter
	var err error
	if *tmplDir != "" {
		conv, err = als.NewFromTemplates(*tmplDir, opts...)
	} else {
		conv, err = als.New(opts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating converter: %v\n", err)
		os.Exit(1)
	}

	filename := flag.Arg(0)
	session, err := sessionfile.Load(filename, sessionfile.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load file %v: %v\n", filename, err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := conv.Convert(&buf, session); err != nil {
		fmt.Fprintf(os.Stderr, "could not convert file %v: %v\n", filename, err)
		os.Exit(1)
	}

	if err := output(*outPath, *safe, buf.Bytes()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func output(path string, safe bool, contents []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(contents)
		return err
	}
	if safe {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file %v would be overwritten", path)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("could not write file %v: %v", path, err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Session to Ableton Live converter. Input a .ses file, outputs the Live set XML.\nUsage: %s [flags] path\n", os.Args[0])
	flag.PrintDefaults()
}
