package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/sessionfile"
)

type encoder interface {
	Encode(v any) error
}

func main() {
	jsonOut := flag.Bool("j", false, "Output the sessions as JSON documents. This is the default.")
	yamlOut := flag.Bool("y", false, "Output the sessions as a stream of YAML documents instead of JSON.")
	verbose := flag.Bool("v", false, "Log every chunk visited by the decoder to standard error.")
	versionFlag := flag.Bool("version", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(sessionfile.GetBuildInfo())
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	if *jsonOut && *yamlOut {
		fmt.Fprintln(os.Stderr, "-j and -y are mutually exclusive")
		os.Exit(2)
	}

	var opts []sessionfile.Option
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, sessionfile.WithLogger(logger))
	}

	enc := newEncoder(os.Stdout, *yamlOut)
	process := func(filename string) error {
		session, err := sessionfile.Load(filename, opts...)
		if err != nil {
			return err
		}
		if err := enc.Encode(session); err != nil {
			return fmt.Errorf("could not marshal the session: %w", err)
		}
		return nil
	}

	retval := 0
	for _, param := range flag.Args() {
		files := []string{param}
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			files, err = filepath.Glob(filepath.Join(param, "*.ses"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "could not glob the path %v for session files: %v\n", param, err)
				retval = 1
				continue
			}
		}
		for _, file := range files {
			if err := process(file); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
				retval = 1
			}
		}
	}
	if c, ok := enc.(io.Closer); ok {
		c.Close()
	}
	os.Exit(retval)
}

func newEncoder(w io.Writer, yamlOut bool) encoder {
	if yamlOut {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Session dumper. Decodes .ses files and prints their contents.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
