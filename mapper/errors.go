package mapper

import (
	"fmt"

	"github.com/libyal/dtfabric-go/diag"
)

// DecodeError is the single exported error type for every runtime
// (decode-time) failure; the failure kinds are distinguished by Code.
type DecodeError struct {
	code   diag.Code
	Name   string // the Definition name, or "" for an anonymous inline type
	Member string // the member name, if the error occurred decoding one
	Offset int64  // byte offset within the top-level decode
	msg    string
}

func newDecodeError(code diag.Code, name, member string, offset int64, msg string) *DecodeError {
	return &DecodeError{code: code, Name: name, Member: member, Offset: offset, msg: msg}
}

// Code returns the stable diagnostic code, for errors.Is/errors.As-style
// matching against the closed code set in package diag.
func (e *DecodeError) Code() diag.Code { return e.code }

func (e *DecodeError) Error() string {
	switch {
	case e.Name != "" && e.Member != "":
		return fmt.Sprintf("%s: %s.%s at offset %d: %s", e.code, e.Name, e.Member, e.Offset, e.msg)
	case e.Name != "":
		return fmt.Sprintf("%s: %s at offset %d: %s", e.code, e.Name, e.Offset, e.msg)
	default:
		return fmt.Sprintf("%s: offset %d: %s", e.code, e.Offset, e.msg)
	}
}
