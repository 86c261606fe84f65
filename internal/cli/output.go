package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ainkit/ainviz/pkg/pipeline"
)

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., ains_graph.svg, ains_timeline.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles everything needed to write pipeline artifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	vizType   string
	multiViz  bool // include the viz type in file names
	input     string
	output    string
}

// writeArtifacts writes each requested format to its own file.
//
// With a single format and an explicit output path, the artifact goes exactly
// there ("-" or "" means stdout). Otherwise file names are derived from the
// input name: base.format, or base_viztype.format when multiple viz types are
// being written.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 && !p.multiViz {
		path := p.output
		if path == "-" {
			path = ""
		} else if path == "" {
			path = basePath("", p.input) + "." + p.formats[0]
		}
		return writeArtifact(p.artifacts[p.formats[0]], path)
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if p.multiViz {
			path = fmt.Sprintf("%s_%s.%s", base, p.vizType, format)
		}
		if err := writeArtifact(p.artifacts[format], path); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printFile(path)
	}
	return nil
}
