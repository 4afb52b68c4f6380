package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/seqdecode/internal/ctxlog"
)

// HCLLoader reads settings files written in HCL native syntax.
type HCLLoader struct{}

// NewHCLLoader returns a Loader backed by HCL.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load parses and decodes a single HCL settings file.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %s", path, diags.Error())
	}

	var settings Settings
	diags = gohcl.DecodeBody(file.Body, nil, &settings)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %s", path, diags.Error())
	}

	logger.Debug("Successfully decoded settings file.", "path", path)
	return &settings, nil
}
