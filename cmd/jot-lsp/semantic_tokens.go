package main

import (
	"context"

	"github.com/jot-format/go-jot/token"

	"go.lsp.dev/protocol"
)

// semanticTokenTypes is the legend order; collectSemanticTokens
// indexes into it.
func semanticTokenTypes() []protocol.SemanticTokenTypes {
	return []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	}
}

// collectSemanticTokens scans the raw document and classifies each
// token: keys are properties, true/false/null are keywords,
// punctuation is an operator. The scanner hands tokens back in
// position order, so no sorting is needed before delta encoding.
func collectSemanticTokens(content string) []uint32 {
	d := []byte(content)
	s := token.NewScanner(d)
	pd := token.NewPosDoc(d)

	var toks []token.Token
	for {
		t := s.Get()
		if t.Type == token.TEOF || t.Type == token.TInvalid {
			break
		}
		toks = append(toks, t)
	}

	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range semanticTokenTypes() {
		typeMap[tt] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine uint32 = 0
	var prevChar uint32 = 0
	for i, t := range toks {
		var typ protocol.SemanticTokenTypes
		length := len(t.Bytes)
		switch t.Type {
		case token.TString:
			typ = protocol.SemanticTokenString
			if i+1 < len(toks) && toks[i+1].Type == token.TColon {
				typ = protocol.SemanticTokenProperty
			}
			// the token bytes sit between the quotes
			length += 2
		case token.TNumber:
			typ = protocol.SemanticTokenNumber
		case token.TTrue, token.TFalse, token.TNull:
			typ = protocol.SemanticTokenKeyword
		default:
			typ = protocol.SemanticTokenOperator
		}

		line, col := pd.LineCol(t.Pos)
		deltaLine := uint32(line) - prevLine
		deltaChar := uint32(col)
		if deltaLine == 0 {
			deltaChar = uint32(col) - prevChar
		}

		tokens = append(tokens, deltaLine, deltaChar, uint32(length), typeMap[typ], 0)

		prevLine = uint32(line)
		prevChar = uint32(col)
	}

	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	// whole-document tokens serve range requests too; clients clip
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content),
	}, nil
}
