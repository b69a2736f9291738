package payload

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
)

func validRequest() Request {
	return Request{
		DocumentID: uuid.New().String(),
		Selection:  json.RawMessage(`{"pages":[1,2]}`),
		Formats:    []string{"csv", "xlsx"},
		Options:    json.RawMessage(`{"include_headers":true}`),
	}
}

func TestRequestValidate(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	bad := validRequest()
	bad.DocumentID = "not-a-uuid"
	if err := bad.Validate(); err == nil {
		t.Error("non-uuid document_id accepted")
	}

	bad = validRequest()
	bad.Formats = nil
	if err := bad.Validate(); err == nil {
		t.Error("empty formats accepted")
	}

	bad = validRequest()
	bad.Formats = []string{"docx"}
	if err := bad.Validate(); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestSchemaValidator(t *testing.T) {
	schema, err := CompileSchema(BuildRequestJSONSchema(constants.ExportFormats()))
	if err != nil {
		t.Fatalf("CompileSchema: %v", err)
	}
	check := Validator(schema)

	good, err := validRequest().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := check(good); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	cases := map[string]string{
		"missing formats":    `{"document_id":"` + uuid.New().String() + `"}`,
		"unknown format":     `{"document_id":"` + uuid.New().String() + `","formats":["docx"]}`,
		"unknown field":      `{"document_id":"` + uuid.New().String() + `","formats":["csv"],"extra":1}`,
		"not json at all":    `{{`,
		"wrong formats type": `{"document_id":"` + uuid.New().String() + `","formats":"csv"}`,
	}
	for name, raw := range cases {
		if err := check(json.RawMessage(raw)); err == nil {
			t.Errorf("%s: payload accepted, want rejection", name)
		}
	}
}
