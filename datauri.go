package inkbook

import (
	"encoding/base64"
	"strings"

	"github.com/akeil/inkbook/internal/errors"
)

const pngDataURLPrefix = "data:image/png;base64,"

// DecodeDataURL decodes a base64 encoded PNG page as sent by a UI client.
//
// The "data:image/png;base64," prefix is optional.
// An empty string decodes to empty data.
func DecodeDataURL(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, pngDataURLPrefix)
	if s == "" {
		return []byte{}, nil
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.NewValidationError("invalid page data: %v", err)
	}
	return data, nil
}

// EncodeDataURL encodes PNG data as a data URL.
func EncodeDataURL(data []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(data)
}
