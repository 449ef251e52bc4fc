package csr

import (
	"encoding/json"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// maxFormSize limits the size of the form-encoded body
const maxFormSize = 64 * 1024

// FieldsFromForm returns the first value of each form field
func FieldsFromForm(form url.Values) Fields {
	f := Fields{}
	for k, v := range form {
		if len(v) > 0 {
			f[k] = v[0]
		}
	}
	return f
}

// ParseForm decodes application/x-www-form-urlencoded body
func ParseForm(r io.Reader) (Fields, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxFormSize+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(b) > maxFormSize {
		return nil, errors.New("form is too large")
	}

	form, err := url.ParseQuery(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, errors.WithMessage(err, "invalid form")
	}
	return FieldsFromForm(form), nil
}

// DecodeFields decodes the subject fields from JSON or YAML
func DecodeFields(data []byte, isJSON bool) (Fields, error) {
	f := Fields{}
	var err error
	if isJSON {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, errors.WithMessage(err, "failed to decode fields")
	}
	return f, nil
}

// LoadFields loads the subject fields from the file.
// Files with .json suffix are decoded as JSON, others as YAML.
func LoadFields(filename string) (Fields, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	f, err := DecodeFields(b, strings.HasSuffix(filename, ".json"))
	if err != nil {
		return nil, errors.WithMessagef(err, "file: %s", filename)
	}
	return f, nil
}
