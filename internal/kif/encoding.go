package kif

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns the text of a KIF file. UTF-8 (with or without BOM) is taken
// as is; anything else is read as Shift_JIS.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("failed to decode Shift_JIS KIF")
	}
	return string(decoded), nil
}

// EncodeShiftJIS converts text for tools that only read .kif as Shift_JIS.
func EncodeShiftJIS(text string) ([]byte, error) {
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(text))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ReadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return ParseRecord(text)
}

func WriteFile(path, text string, shiftJIS bool) error {
	data := []byte(text)
	if shiftJIS {
		var err error
		if data, err = EncodeShiftJIS(text); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
