package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/programmedesign/core/internal/models"
)

// standardsFile accepts either a single definition at the top level or a
// list under "standards".
type standardsFile struct {
	models.StandardDefinition `yaml:",inline"`
	Standards                 []models.StandardDefinition `json:"standards" yaml:"standards"`
}

// ParseStandards decodes a YAML standards reference file.
func ParseStandards(data []byte) ([]models.StandardDefinition, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("standards: %w", ErrEmptyInput)
	}
	var f standardsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standards: %w", err)
	}
	return f.definitions()
}

// ParseStandardsJSON decodes a JSON standards reference file.
func ParseStandardsJSON(data []byte) ([]models.StandardDefinition, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("standards: %w", ErrEmptyInput)
	}
	var f standardsFile
	if err := json.Unmarshal(data, &f.StandardDefinition); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standards: %w", err)
	}
	var list struct {
		Standards []models.StandardDefinition `json:"standards"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standards: %w", err)
	}
	f.Standards = list.Standards
	return f.definitions()
}

func (f standardsFile) definitions() ([]models.StandardDefinition, error) {
	defs := f.Standards
	if f.ID != "" {
		defs = append([]models.StandardDefinition{f.StandardDefinition}, defs...)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("invalid standards: no definitions")
	}
	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("invalid standards: definition %d missing id", i)
		}
	}
	return defs, nil
}

// LoadStandards reads standard definitions from a file, or from every
// .yaml/.yml/.json file in a directory. An empty path yields an empty map.
func LoadStandards(ctx context.Context, path string) (models.StandardsMap, error) {
	standards := models.StandardsMap{}
	if path == "" {
		return standards, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = standardsFiles(path); err != nil {
			return nil, err
		}
	}

	results := make([][]models.StandardDefinition, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defs, err := loadStandardsFile(file)
			if err != nil {
				return err
			}
			results[i] = defs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, defs := range results {
		for _, d := range defs {
			if _, dup := standards[d.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate standard id %q", files[i], d.ID)
			}
			standards[d.ID] = d
		}
	}
	return standards, nil
}

func standardsFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func loadStandardsFile(path string) ([]models.StandardDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var defs []models.StandardDefinition
	if strings.EqualFold(filepath.Ext(path), ".json") {
		defs, err = ParseStandardsJSON(data)
	} else {
		defs, err = ParseStandards(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
