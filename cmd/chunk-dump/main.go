package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simonhull/sessionfile/internal/binary"
	"github.com/simonhull/sessionfile/internal/ses"
)

// Prints the raw chunk tree of a session file without decoding any records.
// Useful for inspecting files the decoder rejects.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: chunk-dump <file.ses>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := dump(os.Stdout, data, os.Args[1]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(w io.Writer, data []byte, path string) error {
	c := binary.NewCursor(data, path)
	magic, err := c.ReadFixed(8, "signature")
	if err != nil {
		return err
	}
	length, err := binary.ReadLE[uint32](c, "file length")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%q (declared: %d, actual: %d)\n", magic, length, c.Remaining())

	return dumpChunks(w, c, 0)
}

// dumpChunks prints the chunks up to the cursor's current bound.
func dumpChunks(w io.Writer, c *binary.Cursor, depth int) error {
	if depth > ses.DefaultMaxDepth {
		return fmt.Errorf("containers nested deeper than %d levels at offset %d", ses.DefaultMaxDepth, c.Position())
	}

	indent := strings.Repeat("  ", depth)

	for c.Remaining() > 0 {
		offset := c.Position()

		tag, err := c.ReadTag("chunk tag")
		if err != nil {
			return err
		}

		listType := ""
		if tag == "LIST" {
			if listType, err = c.ReadTag("list type"); err != nil {
				return err
			}
			tag = "LIST/" + listType
		}

		size, err := binary.ReadLE[uint32](c, "chunk length")
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s%s (size: %d, offset: %d)\n", indent, tag, size, offset)

		if int64(size) > c.Remaining() {
			end := c.Position() + c.Remaining()
			fmt.Fprintf(w, "%s  ! overruns enclosing end %d by %d bytes\n", indent, end, int64(size)-c.Remaining())
			return fmt.Errorf("%q chunk at offset %d overruns its parent", tag, offset)
		}

		if listType != "" {
			bound := c.Limit(int64(size))
			err := dumpChunks(w, c, depth+1)
			c.Restore(bound)
			if err != nil {
				return err
			}
			continue
		}

		if err := c.Skip(int64(size), fmt.Sprintf("%q payload", tag)); err != nil {
			return err
		}
	}
	return nil
}
