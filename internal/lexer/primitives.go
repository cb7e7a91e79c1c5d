package lexer

import (
	"math"
	"strconv"
	"strings"

	"github.com/udhos/objz/internal/objerr"
)

// Omitted is the sentinel meaning "attribute not present in this triplet".
const Omitted = math.MaxUint32

// ParseFloats reads n whitespace-separated float tokens.
func (l *Lexer) ParseFloats(n int) ([]float32, error) {
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		tok := l.Next(false)
		if tok.Empty() {
			return nil, objerr.New(objerr.ParseFloat, tok.Line, tok.Col)
		}
		f, err := strconv.ParseFloat(tok.Text, 32)
		if err != nil {
			return nil, objerr.New(objerr.ParseFloat, tok.Line, tok.Col)
		}
		result[i] = float32(f)
	}
	return result, nil
}

// ParseInt reads one signed decimal integer token.
func (l *Lexer) ParseInt() (int, error) {
	tok := l.Next(false)
	if tok.Empty() {
		return 0, objerr.New(objerr.ParseInt, tok.Line, tok.Col)
	}
	i, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, objerr.New(objerr.ParseInt, tok.Line, tok.Col)
	}
	return i, nil
}

// Triplet is a face corner's (v, vt, vn) reference, still 1-based/raw/signed
// as read from the file; call Normalize to resolve each field.
type Triplet struct {
	V, VT, VN int32 // math.MaxInt32 means "omitted" (vt/vn only)
}

const omittedRaw = math.MaxInt32

// ParseTriplet splits a v[/vt[/vn]] token on '/'. v is mandatory; vt/vn may
// be omitted (empty between slashes, or absent entirely).
func ParseTriplet(tok Token) (Triplet, error) {
	parts := strings.SplitN(tok.Text, "/", 3)
	if len(parts[0]) == 0 {
		return Triplet{}, objerr.New(objerr.ParseFace, tok.Line, tok.Col)
	}
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return Triplet{}, objerr.New(objerr.ParseFace, tok.Line, tok.Col)
	}
	t := Triplet{V: int32(v), VT: omittedRaw, VN: omittedRaw}
	if len(parts) > 1 && parts[1] != "" {
		vt, err := strconv.Atoi(parts[1])
		if err != nil {
			return Triplet{}, objerr.New(objerr.ParseFace, tok.Line, tok.Col)
		}
		t.VT = int32(vt)
	}
	if len(parts) > 2 && parts[2] != "" {
		vn, err := strconv.Atoi(parts[2])
		if err != nil {
			return Triplet{}, objerr.New(objerr.ParseFace, tok.Line, tok.Col)
		}
		t.VN = int32(vn)
	}
	return t, nil
}

// Normalize maps a raw 1-based/negative/omitted attribute index to its
// absolute 0-based form given the current length of the attribute array.
// A positive k maps to k-1; a negative -k maps to length-k; the omitted
// sentinel (math.MaxInt32) maps to Omitted.
func Normalize(raw int32, length int) uint32 {
	if raw == omittedRaw {
		return Omitted
	}
	if raw < 0 {
		return uint32(length + int(raw))
	}
	return uint32(raw - 1)
}
