package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image parses a "data:image/<ext>;base64,<payload>" data URI
// and returns the file extension together with the decoded bytes.
func DecodeBase64Image(data string) (string, []byte, error) {
	header, payload, found := strings.Cut(data, ";base64,")
	if !found {
		return "", nil, fmt.Errorf("missing base64 separator")
	}

	contentType := strings.TrimPrefix(header, "data:")
	if !strings.HasPrefix(contentType, "image/") {
		return "", nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
	ext := strings.TrimPrefix(contentType, "image/")

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return ext, raw, nil
}
