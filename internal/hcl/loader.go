package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/porrinha/internal/config"
	"github.com/specialistvlad/porrinha/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL match file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the schema of a match file.
type fileRoot struct {
	Chopsticks *int           `hcl:"chopsticks,optional"`
	Rounds     *int           `hcl:"rounds,optional"`
	Players    []*playerBlock `hcl:"player,block"`
}

type playerBlock struct {
	Kind string         `hcl:"kind,label"`
	Args hcl.Expression `hcl:"args,optional"`
}

// Load parses and decodes the match file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Match, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, path, file.Body)
}

// LoadBytes decodes a match file held in memory. filename is only used in
// diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Match, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, filename, file.Body)
}

func (l *Loader) decode(ctx context.Context, path string, body hcl.Body) (*config.Match, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	match := &config.Match{
		Chopsticks: root.Chopsticks,
		Rounds:     root.Rounds,
	}
	for _, block := range root.Players {
		spec, err := translatePlayer(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", path, err)
		}
		match.Players = append(match.Players, spec)
	}

	logger.Debug("HCL loading complete.", "path", path, "players", len(match.Players))
	return match, nil
}
