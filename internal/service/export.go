package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/alexanderramin/ventureos/internal/domain"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by EncodeVenture.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EncodeVenture writes data to w as indented JSON or YAML.
func EncodeVenture(w io.Writer, format string, data domain.VentureData) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

type fileExportService struct {
	dir      string
	now      func() time.Time
	observer UseCaseObserver
}

// NewFileExportService writes YAML exports into dir, creating it if needed.
func NewFileExportService(dir string, observers ...UseCaseObserver) ExportService {
	if dir == "" {
		dir = "."
	}
	return &fileExportService{dir: dir, now: time.Now, observer: useCaseObserverOrNoop(observers)}
}

func (s *fileExportService) Export(ctx context.Context, data domain.VentureData) (path string, err error) {
	fields := map[string]any{"project": data.Config.ProjectName}
	defer observe(ctx, s.observer, "export-yaml", time.Now().UTC(), fields, &err)

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	name := fmt.Sprintf("%s-%s.yaml", slug(data.Config.ProjectName), s.now().Format("20060102-150405"))
	path = filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing export file: %w", cerr)
		}
	}()

	if err = EncodeVenture(f, FormatYAML, data); err != nil {
		return "", err
	}
	fields["path"] = path
	return path, nil
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "venture"
	}
	return out
}
