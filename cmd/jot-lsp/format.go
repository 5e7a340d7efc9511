package main

import (
	"bytes"
	"context"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil || doc.root == nil {
		// a document that does not parse cannot be formatted
		return nil, nil
	}

	var buf bytes.Buffer
	err := encode.Encode(ir.FromObject(doc.root), &buf, encode.EncodePretty(true))
	if err != nil {
		return nil, nil
	}
	buf.WriteByte('\n')

	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// one edit replacing the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
