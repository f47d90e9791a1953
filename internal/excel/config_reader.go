package excel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// ConfigReader loads and caches mapping configs from JSON files under a
// base directory. Configs are read once and shared; they are not reloaded
// while the process runs.
type ConfigReader struct {
	baseDir string
	logger  *zap.Logger

	mu    sync.RWMutex
	cache map[string]*MappingConfig
}

// NewConfigReader creates a ConfigReader rooted at baseDir
func NewConfigReader(baseDir string, logger *zap.Logger) *ConfigReader {
	return &ConfigReader{
		baseDir: baseDir,
		logger:  logger,
		cache:   make(map[string]*MappingConfig),
	}
}

// ReadConfig loads the mapping config at path (relative to the base dir)
func (r *ConfigReader) ReadConfig(path string) (*MappingConfig, error) {
	r.mu.RLock()
	if cfg, ok := r.cache[path]; ok {
		r.mu.RUnlock()
		return cfg, nil
	}
	r.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(r.baseDir, path))
	if err != nil {
		r.logger.Error("failed to read excel mapping config", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("read excel config %s: %w", path, err)
	}

	var cfg MappingConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.logger.Error("failed to parse excel mapping config", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("parse excel config %s: %w", path, err)
	}
	if len(cfg.Column) == 0 {
		return nil, fmt.Errorf("excel config %s has no column mappings", path)
	}

	r.mu.Lock()
	r.cache[path] = &cfg
	r.mu.Unlock()
	return &cfg, nil
}
