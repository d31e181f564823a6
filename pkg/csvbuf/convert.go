package csvbuf

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToAST converts the buffer to an AST ArrayDataNode: an array of rows,
// each an array of string literals. This is useful for integration with
// other Shape parsers.
func (b *Buffer) ToAST() *ast.ArrayDataNode {
	rows := make([]ast.SchemaNode, len(b.rows))
	for i, row := range b.rows {
		fields := make([]ast.SchemaNode, len(row))
		for j, text := range row {
			fields[j] = ast.NewLiteralNode(text, ast.ZeroPosition())
		}
		rows[i] = ast.NewArrayDataNode(fields, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(rows, ast.ZeroPosition())
}

// FromAST creates a Buffer with default delimiters from an AST
// ArrayDataNode of the shape produced by ToAST. A record with no
// elements becomes a row holding one empty field, since a row's width is
// never below one.
func FromAST(node ast.SchemaNode) (*Buffer, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("csvbuf: expected *ast.ArrayDataNode, got %T", node)
	}

	buf := New()
	for _, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("csvbuf: expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		buf.appendRow()
		row := len(buf.rows) - 1
		for j, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("csvbuf: expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			text, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("csvbuf: expected field value to be string, got %T", literalNode.Value())
			}
			if j > 0 {
				if err := buf.appendField(row); err != nil {
					return nil, err
				}
			}
			buf.rows[row][j] = text
		}
	}

	return buf, nil
}
