package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var cvSchema string

// ValidatePayload validates a raw CV create/update body against the
// embedded JSON schema. The error message carries the schema detail so the
// API can return it as validation feedback.
func ValidatePayload(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(cvSchema)
	docLoader := gojsonschema.NewBytesLoader(body)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
