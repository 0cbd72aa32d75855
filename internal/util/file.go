package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

const sniffLen = 512

// ValidateMimeType sniffs the leading bytes and checks the detected type
// against the allowlist. Entries may be prefixes ("video/") or full types
// ("application/pdf").
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, sniffLen)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])
	for _, allowed := range allowedTypes {
		if mimeType == allowed || strings.HasPrefix(mimeType, allowed) {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}
