package discipline

import (
	"fmt"
	"strings"
)

// Code is the short uppercase token for a discipline, e.g. "T" or "TR".
type Code string

// topRopeCode is the only code longer than one letter.
const topRopeCode Code = "TR"

// codeTable is the canonical decode table. Encoding can produce codes that
// are missing here (I, M, D) or ambiguous (A, S); decoding accepts only these.
var codeTable = map[Code]Key{
	"S":         Sport,
	"T":         Trad,
	"A":         Aid,
	topRopeCode: TopRope,
	"B":         Bouldering,
}

// Names returns a display name for every active discipline in r.
// The first character of the key is uppercased and the rest left untouched,
// so "deepwatersolo" becomes "Deepwatersolo".
func Names(r Record) []string {
	names := make([]string, 0, len(r))
	for _, k := range r.Active() {
		names = append(names, strings.ToUpper(string(k[:1]))+string(k[1:]))
	}
	return names
}

// Codes returns the short code of every active discipline in r.
// Collisions are not detected: a record with both aid and alpine yields two "A".
func Codes(r Record) []Code {
	codes := make([]Code, 0, len(r))
	for _, k := range r.Active() {
		codes = append(codes, CodeFor(k))
	}
	return codes
}

// CodesString joins Codes(r) with single spaces, e.g. "T A".
func CodesString(r Record) string {
	codes := Codes(r)
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// CodeFor returns the encode-direction code for k.
func CodeFor(k Key) Code {
	if k == TopRope {
		return topRopeCode
	}
	return Code(strings.ToUpper(string(k[:1])))
}

// Decodable reports whether k has an entry in the canonical decode table and
// therefore survives an encode/decode round trip.
func Decodable(k Key) bool {
	for _, known := range codeTable {
		if known == k {
			return true
		}
	}
	return false
}

// Decode parses a space-delimited code string into a partial Record.
//
// Tokens are split on the single space character and matched against the
// canonical table without regard to case. An unrecognized token, including
// the empty tokens produced by leading, trailing or doubled spaces, sets the
// returned flag but does not stop decoding. Disciplines that were not decoded
// are absent from the Record rather than false.
func Decode(codes string) (Record, bool) {
	r, unknown := decode(codes)
	return r, len(unknown) > 0
}

// DecodeStrict decodes like Decode but returns a *DecodeError naming every
// unrecognized token. The partial Record is returned in both cases.
func DecodeStrict(codes string) (Record, error) {
	r, unknown := decode(codes)
	if len(unknown) > 0 {
		return r, &DecodeError{Input: codes, Tokens: unknown}
	}
	return r, nil
}

func decode(codes string) (Record, []string) {
	r := Record{}
	var unknown []string
	for _, token := range strings.Split(codes, " ") {
		k, ok := codeTable[Code(strings.ToUpper(token))]
		if !ok {
			unknown = append(unknown, token)
			continue
		}
		r[k] = true
	}
	return r, unknown
}

// DecodeError reports the tokens of a code string that matched no discipline.
type DecodeError struct {
	Input  string
	Tokens []string
}

func (e *DecodeError) Error() string {
	quoted := make([]string, len(e.Tokens))
	for i, t := range e.Tokens {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("unrecognized discipline codes in %q: %s", e.Input, strings.Join(quoted, ", "))
}

// IsDecodeError checks if an error is a DecodeError.
func IsDecodeError(err error) bool {
	_, ok := err.(*DecodeError)
	return ok
}
