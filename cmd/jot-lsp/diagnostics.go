package main

import (
	"context"
	"errors"
	"sync"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
	"github.com/jot-format/go-jot/token"

	"go.lsp.dev/protocol"
)

// documentStore holds the open documents. jsonrpc2 dispatches
// concurrently, so access is guarded.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	root    *ir.Object
	err     error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	root, err := parse.Parse([]byte(content))
	if err != nil && debug.LSP() {
		debug.Logf("lsp: %s@%d: %v\n", uri, version, err)
	}
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		root:    root,
		err:     err,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "jot",
	}
	perr := &parse.Error{}
	if errors.As(doc.err, &perr) {
		pd := token.NewPosDoc([]byte(doc.content))
		line, col := pd.LineCol(perr.Pos)
		width := len(perr.Tok)
		if width == 0 {
			width = 1
		}
		diagnostic.Range = protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line),
				Character: uint32(col),
			},
			End: protocol.Position{
				Line:      uint32(line),
				Character: uint32(col + width),
			},
		}
		diagnostic.Message = perr.Reason
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		// a zero range means the client replaced the whole document
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
			continue
		}
		start := offsetAt(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
		end := offsetAt(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
		if start <= end && end <= len(content) {
			content = content[:start] + change.Text + content[end:]
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// offsetAt maps a zero based line/column pair to a byte offset,
// clamping past-the-end positions to the document length.
func offsetAt(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i := range len(content) {
		if currentLine == line && currentCol == col {
			return i
		}
		if content[i] == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
