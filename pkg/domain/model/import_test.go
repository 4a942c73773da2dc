package model_test

import (
	"encoding/json"
	"testing"

	"github.com/elangsegara/xray-sync/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestImportResponse_Decode(t *testing.T) {
	body := `{
		"updatedOrCreatedTests": [
			{"id": "10001", "key": "ATI-1", "self": "https://example.atlassian.net/rest/api/2/issue/10001", "summary": "ignored"},
			{"key": "ATI-2"}
		],
		"updatedOrCreatedPreconditions": [{"id": "10010", "key": "ATI-9"}],
		"errors": ["Error in file cucumber.json: unknown step"]
	}`

	var resp model.ImportResponse
	gt.NoError(t, json.Unmarshal([]byte(body), &resp))

	gt.A(t, resp.UpdatedOrCreatedTests).Length(2)
	gt.Value(t, resp.UpdatedOrCreatedTests[0]).Equal(model.TestRecord{
		ID:   "10001",
		Key:  "ATI-1",
		Self: "https://example.atlassian.net/rest/api/2/issue/10001",
	})
	gt.Value(t, resp.UpdatedOrCreatedTests[1].Key).Equal("ATI-2")
	gt.A(t, resp.UpdatedOrCreatedPreconditions).Length(1)
	gt.A(t, resp.Errors).Length(1)
}
