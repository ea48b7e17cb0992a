package types

type BaseResponse struct {
	DocId string `json:"docId"`
	Lang  string `json:"lang"`
}

// TablesResponse holds the exported tables of a single configuration keyed by output name.
type TablesResponse struct {
	BaseResponse
	Tables map[string]interface{} `json:"tables"`
}
