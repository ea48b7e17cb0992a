package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"text2phenotype.com/relex/api"
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/pipeline"
	"text2phenotype.com/relex/sentiment"
	"text2phenotype.com/relex/types"
	"text2phenotype.com/relex/worker"
)

type Config struct {
	ConfigPath    string `envconfig:"RELEX_CONFIG_PATH"`
	RestAPIActive bool   `envconfig:"RELEX_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"RELEX_REST_API_PORT" default:"10000"`
}

const pipelineStartMaxRetries = 5

func loadConfigurations(configPath string) ([]types.Configuration, error) {
	if configPath == "" {
		return []types.Configuration{types.DefaultConfiguration()}, nil
	}
	return types.LoadConfigurations(configPath)
}

func main() {
	logger.SetupLogging()
	relexLogger := logger.NewLogger("Main")
	fatalErrLogger := relexLogger.Fatal().Caller()

	input := flag.String("input", "", "parsed document file or directory; runs offline when set")
	outDir := flag.String("out", "", "output directory for offline mode")
	format := flag.String("format", formatJSON, "offline output format: json or csv")
	sqlitePath := flag.String("sqlite", "", "sqlite database receiving the offline tables")
	normalize := flag.Bool("normalize", false, "print normalized text instead of tables")
	useSentiment := flag.Bool("sentiment", true, "score sentence polarity")
	progress := flag.Bool("progress", true, "show a progress bar in offline mode")
	flag.Parse()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var scorer document.Scorer = sentiment.Neutral{}
	if *useSentiment {
		scorer = sentiment.NewVader()
	}

	if *input != "" {
		cfgs, err := loadConfigurations(config.ConfigPath)
		if err != nil {
			fatalErrLogger.Err(err).Msg("Failed to load configurations")
			os.Exit(1)
		}
		run := &offline{
			Input:          *input,
			OutDir:         *outDir,
			Format:         *format,
			SQLite:         *sqlitePath,
			Normalize:      *normalize,
			Progress:       *progress,
			Configurations: cfgs,
			Scorer:         scorer,
			Stdout:         os.Stdout,
		}
		if _, err := run.Run(ctx); err != nil {
			fatalErrLogger.Err(err).Msg("Offline processing failed")
			os.Exit(1)
		}
		return
	}

	//Load Pipeline
	pipelineChannel := make(chan pipeline.Pipeline)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			cfgs, err := loadConfigurations(config.ConfigPath)
			if err != nil {
				relexLogger.Err(err).Msg("Failed to load configurations. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			relexLogger.Info().Msgf("Loaded %d configurations", len(cfgs))
			relexLogger.Info().Msg("Starting pipelines loading")

			ppln, err := pipeline.New(pipeline.GetParams(cfgs), scorer)
			if err != nil {
				relexLogger.Err(err).Msg("Failed to start relations pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			relexLogger.Info().Msg("Pipelines loaded")
			pipelineChannel <- ppln
			return
		}
		fatalErrLogger.Msg("Could not start pipelines after 5 retries, exiting")
		os.Exit(1)
	}()

	// block until pipeline loads
	ppln := <-pipelineChannel

	if config.RestAPIActive {
		go func() {
			relexLogger.Info().Msg("Starting API service")
			http.Handle("/", &api.Handler{Pipeline: ppln})
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			relexLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, nil)
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}()
	}

	relexLogger.Info().Msg("Start relex worker")
	for ctx.Err() == nil {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			fatalErrLogger.Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.Run(ctx)
		if err != nil && ctx.Err() == nil {
			relexLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
	relexLogger.Info().Msg("Relex worker stopped")
}
