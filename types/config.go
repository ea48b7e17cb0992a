package types

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/utils"
)

const (
	// outputs
	OutputRelations = "relations"
	OutputSVOs      = "svos"
	OutputTokens    = "tokens"

	// relation sources for svo extraction
	SourceRaw     = "raw"
	SourceReduced = "reduced"

	DefaultConfigurationName = "default"
)

var (
	ErrUnknownOutput = errors.New("configuration: unknown output")
	ErrUnknownSource = errors.New("configuration: unknown svo source")
)

type Configuration struct {
	Name      string              `json:"name"`
	FilePath  string              `json:"file_path"`
	Outputs   []string            `yaml:"outputs" json:"outputs"`
	Reduced   *bool               `yaml:"reduced" json:"reduced"`
	SVOSource string              `yaml:"svo_source" json:"svo_source"`
	Columns   map[string][]string `yaml:"columns" json:"columns"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Name:    DefaultConfigurationName,
		Outputs: []string{OutputRelations, OutputSVOs, OutputTokens},
	}
}

func (cfg Configuration) CheckOutput(output string) bool {
	for _, out := range cfg.Outputs {
		if out == output {
			return true
		}
	}

	return false
}

// IsReduced reports whether relation tables use reduced relations. Defaults to true.
func (cfg Configuration) IsReduced() bool {
	return cfg.Reduced == nil || *cfg.Reduced
}

func (cfg Configuration) ReducedSVOs() bool {
	return cfg.SVOSource == SourceReduced
}

func (cfg Configuration) GetColumns(output string) []string {
	return cfg.Columns[output]
}

func (cfg Configuration) GetHashCode() uint64 {
	outputs := append([]string(nil), cfg.Outputs...)
	sort.Strings(outputs)
	return utils.HashString(fmt.Sprintf("%s|%v|%s", strings.Join(outputs, ","), cfg.IsReduced(), cfg.SVOSource))
}

func (cfg Configuration) Validate() error {
	if len(cfg.Outputs) == 0 {
		return fmt.Errorf("%w: no outputs in %q", ErrUnknownOutput, cfg.Name)
	}
	for _, out := range cfg.Outputs {
		switch out {
		case OutputRelations, OutputSVOs, OutputTokens:
		default:
			return fmt.Errorf("%w: %q in %q", ErrUnknownOutput, out, cfg.Name)
		}
	}
	for out := range cfg.Columns {
		if !cfg.CheckOutput(out) {
			return fmt.Errorf("%w: columns for %q in %q", ErrUnknownOutput, out, cfg.Name)
		}
	}
	switch cfg.SVOSource {
	case "", SourceRaw, SourceReduced:
	default:
		return fmt.Errorf("%w: %q in %q", ErrUnknownSource, cfg.SVOSource, cfg.Name)
	}
	return nil
}

func LoadConfigurations(dirPath string) ([]Configuration, error) {
	cfgLogger := logger.NewLogger("LoadConfigurations")

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	configChan := make(chan Configuration, len(files))
	for _, f := range files {
		// Skip dirs and non-yaml files
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
			continue
		}

		wg.Add(1)
		go func(file os.DirEntry) {
			defer wg.Done()
			cfg := Configuration{
				Name:     strings.TrimSuffix(file.Name(), ".yaml"),
				FilePath: path.Join(dirPath, file.Name()),
			}
			buf, err := os.ReadFile(cfg.FilePath)
			if err != nil {
				cfgLogger.Err(err).Str("file_path", cfg.FilePath).Msg("Failed to read configuration")
				return
			}
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				cfgLogger.Err(err).Str("file_path", cfg.FilePath).Msg("Failed to parse configuration")
				return
			}

			if err := cfg.Validate(); err != nil {
				cfgLogger.Err(err).Str("file_path", cfg.FilePath).Msg("Skipping invalid configuration")
				return
			}

			configChan <- cfg
		}(f)
	}

	go func() {
		wg.Wait()
		close(configChan)
	}()

	configs := make([]Configuration, 0, len(files))
	for cfg := range configChan {
		configs = append(configs, cfg)
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})
	return configs, nil
}
