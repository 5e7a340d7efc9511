package token

type TokenType int

const (
	TInvalid = iota
	TEOF
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TInvalid: "TInvalid",
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
}

// Token is one lexical element: its kind, its byte offset in the
// input, and the literal bytes it covers. String tokens hold the text
// between the quotes, with escape pairs kept verbatim. Invalid and
// end-of-input tokens cover no bytes.
type Token struct {
	Type  TokenType
	Pos   int
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}
