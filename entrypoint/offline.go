package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/gosuri/uiprogress"
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/export"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/pipeline"
	"text2phenotype.com/relex/predicates"
	"text2phenotype.com/relex/store"
	"text2phenotype.com/relex/types"
	"text2phenotype.com/relex/utils"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"

	// a file with this suffix lists one parsed document path per line
	listSuffix = ".list"
)

// offline processes parsed documents from disk instead of the queue.
type offline struct {
	Input     string
	OutDir    string
	Format    string
	SQLite    string
	Normalize bool
	Progress  bool

	Configurations []types.Configuration
	Scorer         document.Scorer
	Stdout         io.Writer
}

func (o *offline) inputFiles() ([]string, error) {
	info, err := os.Stat(o.Input)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if strings.HasSuffix(o.Input, listSuffix) {
			return utils.ReadList(o.Input)
		}
		return []string{o.Input}, nil
	}
	return utils.ListFiles(o.Input, ".json")
}

// Run returns the number of processed documents.
func (o *offline) Run(ctx context.Context) (int, error) {
	offlineLogger := logger.NewLogger("Offline")
	if o.Format == "" {
		o.Format = formatJSON
	}
	if o.Format != formatJSON && o.Format != formatCSV {
		return 0, fmt.Errorf("unknown output format %q", o.Format)
	}
	if len(o.Configurations) == 0 {
		o.Configurations = []types.Configuration{types.DefaultConfiguration()}
	}

	files, err := o.inputFiles()
	if err != nil {
		return 0, err
	}
	offlineLogger.Info().Int("files", len(files)).Str("input", o.Input).Msg("Processing parsed documents")

	var db *store.Store
	if o.SQLite != "" {
		db, err = store.Open(o.SQLite)
		if err != nil {
			return 0, err
		}
		defer db.Close()
	}
	if o.OutDir != "" {
		if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
			return 0, err
		}
	}

	var bar *uiprogress.Bar
	if o.Progress && len(files) > 1 {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(files))
		bar.AppendCompleted()
		bar.PrependElapsed()
		defer uiprogress.Stop()
	}

	processed := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if err := o.processFile(ctx, file, db); err != nil {
			offlineLogger.Err(err).Str("file", file).Msg("Failed to process document")
			return processed, err
		}
		processed++
		if bar != nil {
			bar.Incr()
		}
	}
	offlineLogger.Info().Int("processed", processed).Msg("Finished processing documents")
	return processed, nil
}

func (o *offline) processFile(ctx context.Context, file string, db *store.Store) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	doc, err := document.Decode(f, o.Scorer)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	base := strings.TrimSuffix(path.Base(file), path.Ext(file))

	if o.Normalize {
		text := predicates.NormalizeText(doc)
		if o.OutDir == "" {
			_, err = fmt.Fprintln(o.Stdout, text)
			return err
		}
		return os.WriteFile(path.Join(o.OutDir, base+".txt"), []byte(text+"\n"), 0o644)
	}

	responses := make(map[string]types.TablesResponse, len(o.Configurations))
	for _, cfg := range o.Configurations {
		response, err := pipeline.BuildTables(doc, cfg)
		if err != nil {
			return fmt.Errorf("%s: configuration %s: %w", file, cfg.Name, err)
		}
		responses[cfg.Name] = response

		for _, output := range cfg.Outputs {
			table, ok := response.Tables[output].(*export.Table)
			if !ok {
				continue
			}
			if db != nil {
				named := *table
				named.Name = cfg.Name + "_" + table.Name
				if err := db.Write(ctx, &named); err != nil {
					return err
				}
			}
			if o.OutDir != "" && o.Format == formatCSV {
				name := fmt.Sprintf("%s.%s.%s.csv", base, cfg.Name, table.Name)
				if err := writeFile(path.Join(o.OutDir, name), func(w io.Writer) error {
					return export.WriteCSV(w, table)
				}); err != nil {
					return err
				}
			}
		}
	}

	switch {
	case o.OutDir != "" && o.Format == formatJSON:
		return writeFile(path.Join(o.OutDir, base+".json"), func(w io.Writer) error {
			return json.NewEncoder(w).Encode(responses)
		})
	case o.OutDir == "" && db == nil:
		return json.NewEncoder(o.Stdout).Encode(responses)
	}
	return nil
}

func writeFile(name string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
