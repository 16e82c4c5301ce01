package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrUnsupportedFormat is returned for file extensions other than json, yaml and yml.
var ErrUnsupportedFormat = errors.New("unsupported stats file format")

// repository implements the Repository interface.
type repository struct {
	logger *slog.Logger
}

// NewRepository creates a new Repository instance.
func NewRepository(logger *slog.Logger) Repository {
	return &repository{
		logger: logger,
	}
}

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return codec{
			marshal:   func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
			unmarshal: json.Unmarshal,
		}, nil
	case ".yaml", ".yml":
		return codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}, nil
	default:
		return codec{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save persists a dataset to storage.
func (r *repository) Save(ctx context.Context, ds *Dataset, path string) error {
	if ds == nil {
		return fmt.Errorf("dataset cannot be nil")
	}

	c, err := codecFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := c.marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	r.logger.Info("Saved stats dataset", "path", path, "sections", len(ds.Sections))
	return nil
}

// Load reads a dataset from storage.
func (r *repository) Load(ctx context.Context, path string) (*Dataset, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var ds Dataset
	if err := c.unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}

	players := 0
	for _, s := range ds.Sections {
		players += len(s.Players)
	}
	r.logger.Info("Loaded stats dataset", "path", path, "sections", len(ds.Sections), "rows", players)
	return &ds, nil
}
