package compare

import (
	"encoding/json"
)

// JSONFormatter formats a comparison as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for a comparison result.
func (jf *JSONFormatter) Format(result *ComparisonResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
