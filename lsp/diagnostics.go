package lsp

import (
	"encoding/xml"
	"errors"

	"github.com/iancoleman/strcase"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/jeedd/binding"
	"github.com/dhamidi/jeedd/workspace"
	"github.com/dhamidi/jeedd/xmlcursor"
)

var source = lsName

// Diagnostics converts the decode result of f. A fatal error becomes one
// error diagnostic, conditions become warnings at the element or
// attribute they were reported for.
func Diagnostics(f *workspace.File) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if f.Err != nil {
		diags = append(diags, fatal(f.Err))
	}
	for _, c := range f.Diagnostics {
		diags = append(diags, condition(c))
	}
	return diags
}

func fatal(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	var line protocol.UInteger
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) && syntax.Line > 0 {
		line = protocol.UInteger(syntax.Line - 1)
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line},
			End:   protocol.Position{Line: line + 1},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

func condition(c binding.Condition) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityWarning
	code := protocol.IntegerOrString{Value: strcase.ToKebab(c.Kind.String())}

	start := position(c.Pos)
	end := start
	// Cover the start tag name, including '<'.
	end.Character += protocol.UInteger(len(c.Name.Local) + 1)

	c.Pos = xmlcursor.Position{}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Code:     &code,
		Source:   &source,
		Message:  c.String(),
	}
}

// position converts a 1-based reader position to a 0-based LSP position.
func position(p xmlcursor.Position) protocol.Position {
	if !p.IsValid() {
		return protocol.Position{}
	}
	col := p.Column - 1
	if col < 0 {
		col = 0
	}
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(col),
	}
}
