package pipeline

import (
	"text2phenotype.com/relex/document"
	"text2phenotype.com/relex/export"
	"text2phenotype.com/relex/relations"
	"text2phenotype.com/relex/types"
	"text2phenotype.com/relex/utils"
)

type Result struct {
	ConfigName string
	Data       interface{}
	Err        error
}

func NewTablesResult() func(in <-chan *document.Doc, cfg types.Configuration) <-chan Result {
	return func(in <-chan *document.Doc, cfg types.Configuration) <-chan Result {
		out := make(chan Result)
		go func() {
			defer close(out)
			for doc := range in {
				response, err := recoveredTables(doc, cfg)
				out <- Result{
					ConfigName: cfg.Name,
					Data:       response,
					Err:        err,
				}
			}
		}()
		return out
	}
}

func recoveredTables(doc *document.Doc, cfg types.Configuration) (response types.TablesResponse, err error) {
	defer utils.RecoverWithError(&err)
	return BuildTables(doc, cfg)
}

// BuildTables runs the extraction for one configuration. Each call uses its
// own extractor, so documents may be shared between configurations.
func BuildTables(doc *document.Doc, cfg types.Configuration) (types.TablesResponse, error) {
	response := types.TablesResponse{
		BaseResponse: types.BaseResponse{
			DocId: doc.ID(),
			Lang:  doc.Lang(),
		},
		Tables: make(map[string]interface{}, len(cfg.Outputs)),
	}

	e := relations.New(doc)
	raw := e.Relations()
	var reduced []relations.Relation
	getReduced := func() []relations.Relation {
		if reduced == nil {
			reduced = e.Reduce(raw)
		}
		return reduced
	}

	for _, output := range cfg.Outputs {
		var (
			table *export.Table
			err   error
		)
		columns := cfg.GetColumns(output)
		switch output {
		case types.OutputRelations:
			rels := raw
			if cfg.IsReduced() {
				rels = getReduced()
			}
			table, err = export.RelationTable(export.Relations(e, rels), columns)
		case types.OutputSVOs:
			source := raw
			if cfg.ReducedSVOs() {
				source = getReduced()
			}
			table, err = export.SVOTable(export.SVOs(e.SVOs(source)), columns)
		case types.OutputTokens:
			table, err = export.TokenTable(export.Tokens(e), columns)
		default:
			err = types.ErrUnknownOutput
		}
		if err != nil {
			return response, err
		}
		response.Tables[output] = table
	}
	return response, nil
}
