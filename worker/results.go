package worker

import (
	"encoding/json"
	"fmt"
	"path"
)

const resultsContentType = "application/json"

func resultsFileKey(docID, chunkKey string) string {
	return path.Join(
		"processed",
		"documents",
		docID,
		"chunks",
		chunkKey,
		fmt.Sprintf("%s.%s_results.json", chunkKey, TaskName),
	)
}

type resultTables struct {
	Tables map[string]struct {
		Data []json.RawMessage `json:"data"`
	} `json:"tables"`
}

// tableCounts reads the number of rows per configuration and output from a
// pipeline response.
func tableCounts(result string) (map[string]map[string]int, error) {
	var response map[string]resultTables
	if err := json.Unmarshal([]byte(result), &response); err != nil {
		return nil, fmt.Errorf("pipeline response: %w", err)
	}
	counts := make(map[string]map[string]int, len(response))
	for config, res := range response {
		counts[config] = make(map[string]int, len(res.Tables))
		for output, table := range res.Tables {
			counts[config][output] = len(table.Data)
		}
	}
	return counts, nil
}
