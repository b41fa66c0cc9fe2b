package mapper

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/libyal/dtfabric-go/diag"
)

// textEncodings maps a `string` kind's `encoding` attribute value to the
// decoder that turns its raw byte run into text. UTF-8 needs no transform:
// encoding.Nop passes the bytes through, and decodeText checks them with
// utf8.Valid.
var textEncodings = map[string]encoding.Encoding{
	"utf-8":        encoding.Nop,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"ascii":        charmap.Windows1252, // ASCII is a strict subset; 7-bit input decodes identically
	"windows-1252": charmap.Windows1252,
}

// decodeText transforms raw bytes into a string under the named encoding,
// reporting E_INVALID_ENCODING for an unknown name or a malformed byte run.
func decodeText(raw []byte, name, ownerName string, offset int64) (string, error) {
	enc, ok := textEncodings[name]
	if !ok {
		return "", newDecodeError(diag.E_INVALID_ENCODING, ownerName, "", offset,
			"unknown text encoding "+name)
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", newDecodeError(diag.E_INVALID_ENCODING, ownerName, "", offset, err.Error())
	}
	if name == "utf-8" && !utf8.Valid(out) {
		return "", newDecodeError(diag.E_INVALID_ENCODING, ownerName, "", offset,
			"malformed utf-8 byte run")
	}
	return string(out), nil
}
