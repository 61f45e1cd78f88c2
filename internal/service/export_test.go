package service

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ventureos/internal/domain"
	"github.com/alexanderramin/ventureos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncodeVenture_JSONUsesCamelCase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeVenture(&buf, FormatJSON, testutil.NewTestVenture("PawPath")))
	assert.Contains(t, buf.String(), `"projectName": "PawPath"`)

	var back domain.VentureData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "PawPath", back.Config.ProjectName)
}

func TestEncodeVenture_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeVenture(&buf, "YAML", testutil.NewTestVenture("PawPath")))
	assert.Contains(t, buf.String(), "projectName: PawPath")

	var back domain.VentureData
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, domain.PricingCommission, back.Config.PricingModel.Type)
	assert.Equal(t, 18, back.Deck.Slide7TheAsk.RunwayMonths)
}

func TestEncodeVenture_UnknownFormat(t *testing.T) {
	err := EncodeVenture(&bytes.Buffer{}, "xml", domain.Placeholder())
	assert.Error(t, err)
}

func TestFileExportService_WritesYAML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	svc := NewFileExportService(dir).(*fileExportService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC) }

	path, err := svc.Export(context.Background(), testutil.NewTestVenture("Paw Path!"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "paw-path-20240601-103000.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "projectName: Paw Path!"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "pawpath", slug("PawPath"))
	assert.Equal(t, "venture-os", slug("  Venture-OS "))
	assert.Equal(t, "venture", slug("!!!"))
}
