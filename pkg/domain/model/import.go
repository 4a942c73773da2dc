package model

// TestRecord is one test created or updated by an import
type TestRecord struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// ImportResponse is the body returned by the import endpoint
type ImportResponse struct {
	UpdatedOrCreatedTests         []TestRecord `json:"updatedOrCreatedTests"`
	UpdatedOrCreatedPreconditions []TestRecord `json:"updatedOrCreatedPreconditions"`
	Errors                        []string     `json:"errors"`
}

// ResultFile is an execution result file ready to be uploaded
type ResultFile struct {
	Name    string // File name as given, relative to the results directory; sent as the multipart filename
	Content []byte
}
