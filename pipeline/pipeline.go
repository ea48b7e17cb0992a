package pipeline

import (
	"encoding/json"
	"strings"

	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/logger"
	"text2phenotype.com/relex/types"
)

// Pipeline turns a request into a JSON response keyed by configuration
// name. The channel is closed without a value when the request fails.
type Pipeline func(request Request) <-chan string

type Params struct {
	Configurations []types.Configuration `json:"configurations"`
}

func GetParams(cfgs []types.Configuration) Params {
	if len(cfgs) == 0 {
		cfgs = []types.Configuration{types.DefaultConfiguration()}
	}
	return Params{Configurations: cfgs}
}

func New(params Params, scorer document.Scorer) (Pipeline, error) {
	relexLogger := logger.NewLogger("Relations pipeline")
	relexLogger.Info().
		Interface("params", params).
		Msg("Starting relations pipeline (see parameters in 'params' field)")
	for _, cfg := range params.Configurations {
		if err := cfg.Validate(); err != nil {
			relexLogger.Err(err).Str("config_name", cfg.Name).Msg("Invalid configuration")
			return nil, err
		}
		relexLogger.Debug().
			Str("config_name", cfg.Name).
			Uint64("config_hash", cfg.GetHashCode()).
			Strs("outputs", cfg.Outputs).
			Msg("Configuration loaded")
	}

	splitter := NewDocumentChannelSplitter(len(params.Configurations))
	tablesResult := NewTablesResult()

	return func(request Request) <-chan string {
		responseChan := make(chan string, 1)
		pplnLog := relexLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started relations pipeline")
		errLogger := pplnLog.With().Caller().Logger()

		go func() {
			defer close(responseChan)
			defer func() {
				if rv := recover(); rv != nil {
					errLogger.Error().Interface("panic", rv).Msg("Relations pipeline panicked")
				}
			}()

			doc, err := document.Decode(strings.NewReader(request.Text), scorer)
			if err != nil {
				errLogger.Err(err).Msg("Failed to decode parsed document")
				return
			}
			pplnLog = pplnLog.With().Str("doc_id", doc.ID()).Logger()

			in := make(chan *document.Doc)
			split := splitter(in)

			resultChannel := make(chan Result)
			for i, cfg := range params.Configurations {
				connect(tablesResult(split[i], cfg), resultChannel)
			}

			in <- doc
			close(in)

			response := make(map[string]interface{})
			failed := false
			for i := 0; i < len(params.Configurations); i++ {
				res := <-resultChannel
				if res.Err != nil {
					errLogger.Err(res.Err).Str("config_name", res.ConfigName).Msg("Configuration failed")
					failed = true
					continue
				}
				pplnLog.Info().
					Str("config_name", res.ConfigName).
					Msg("Finished pipeline for configuration")
				response[res.ConfigName] = res.Data
			}
			if failed {
				return
			}

			buf, err := json.Marshal(response)
			if err != nil {
				errLogger.Err(err).Msg("Failed to marshall response")
				return
			}
			pplnLog.Info().Msg("Finished relations pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}, nil
}

func connect(from <-chan Result, to chan<- Result) {
	go func() {
		for v := range from {
			to <- v
		}
	}()
}
