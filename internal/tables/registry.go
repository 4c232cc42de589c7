package tables

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Decoder turns one table dump into its wire struct.
type Decoder interface {
	// Format returns the decoder name (e.g., "yaml")
	Format() string

	// Extensions returns file extensions this decoder handles
	Extensions() []string

	// Decode fills out from content. An empty document leaves out untouched.
	Decode(filename string, content []byte, out any) error
}

// Registry holds the registered table decoders and reads table directories.
type Registry struct {
	decoders    map[string]Decoder // format -> decoder
	extToFormat map[string]string  // extension -> format
	logger      *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		decoders:    make(map[string]Decoder),
		extToFormat: make(map[string]string),
		logger:      logger,
	}
}

// DefaultRegistry returns a registry that reads YAML and JSON dumps.
func DefaultRegistry(logger *zap.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(YAMLDecoder{})
	return r
}

// Register adds a decoder to the registry
func (r *Registry) Register(d Decoder) {
	format := d.Format()
	r.decoders[format] = d
	for _, ext := range d.Extensions() {
		r.extToFormat[strings.ToLower(ext)] = format
	}
}

// DecoderFor returns the decoder registered for the file's extension.
func (r *Registry) DecoderFor(filename string) (Decoder, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	format, ok := r.extToFormat[ext]
	if !ok {
		return nil, false
	}
	d, ok := r.decoders[format]
	return d, ok
}

// SupportedExtensions returns all supported file extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.extToFormat))
	for ext := range r.extToFormat {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Locate finds the dump for a table base name in dir. The first supported
// extension in sorted order wins when several exist.
func (r *Registry) Locate(dir, base string) (string, bool) {
	for _, ext := range r.SupportedExtensions() {
		path := filepath.Join(dir, base+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// DecodeFile decodes the file at path into out.
func (r *Registry) DecodeFile(path string, out any) error {
	d, ok := r.DecoderFor(path)
	if !ok {
		return fmt.Errorf("no decoder for %s", filepath.Base(path))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return d.Decode(path, content, out)
}

// YAMLDecoder reads YAML dumps. JSON dumps are valid YAML and go through the
// same decoder.
type YAMLDecoder struct {
	// Strict rejects keys the wire structs do not declare.
	Strict bool
}

func (YAMLDecoder) Format() string { return "yaml" }

func (YAMLDecoder) Extensions() []string { return []string{".yaml", ".yml", ".json"} }

func (d YAMLDecoder) Decode(filename string, content []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(d.Strict)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s: %w", filepath.Base(filename), err)
	}
	return nil
}
