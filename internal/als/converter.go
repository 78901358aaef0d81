// Package als renders a decoded session as an Ableton Live set.
//
// The set is produced from text templates. New uses the templates embedded
// in the binary; NewFromTemplates loads a replacement set from a directory.
// Each Converter owns its templates, so several can be used concurrently.
package als

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/simonhull/sessionfile/internal/types"
)

// RootTemplate is the template executed by Convert. The other templates are
// reached from it.
const RootTemplate = "Ableton.xml"

//go:embed templates/*.xml
var templateFS embed.FS

// Converter turns sessions into Live set XML.
type Converter struct {
	Template  *template.Template
	SampleDir []string
	log       *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used to trace the conversion at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithSampleDir sets the directory, relative to the set, in which Live should
// look for the referenced audio files. Both separator conventions are
// accepted.
func WithSampleDir(dir string) Option {
	return func(c *Converter) {
		c.SampleDir = splitDir(dir)
	}
}

// New returns a converter using the default templates.
func New(opts ...Option) (*Converter, error) {
	tmpl, err := newTemplate().ParseFS(templateFS, "templates/*.xml")
	if err != nil {
		return nil, fmt.Errorf("could not create templates: %w", err)
	}
	return newConverter(tmpl, opts), nil
}

// NewFromTemplates returns a converter using the *.xml templates found in
// templateDirectory. The directory must provide at least RootTemplate.
func NewFromTemplates(templateDirectory string, opts ...Option) (*Converter, error) {
	globPtrn := filepath.Join(templateDirectory, "*.xml")
	tmpl, err := newTemplate().ParseGlob(globPtrn)
	if err != nil {
		return nil, fmt.Errorf("could not create templates from directory %q: %w", templateDirectory, err)
	}
	if tmpl.Lookup(RootTemplate) == nil {
		return nil, fmt.Errorf("template directory %q has no %s", templateDirectory, RootTemplate)
	}
	return newConverter(tmpl, opts), nil
}

func newTemplate() *template.Template {
	return template.New("base").Funcs(sprig.TxtFuncMap()).Option("missingkey=error")
}

func newConverter(tmpl *template.Template, opts []Option) *Converter {
	c := &Converter{
		Template: tmpl,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert writes the Live set for s to w. Nothing is written if the
// conversion fails.
func (c *Converter) Convert(w io.Writer, s *types.Session) error {
	set, err := c.buildSet(s)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Template.ExecuteTemplate(&buf, RootTemplate, set); err != nil {
		return fmt.Errorf("could not execute template %q: %w", RootTemplate, err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}
