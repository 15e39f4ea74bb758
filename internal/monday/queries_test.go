package monday

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// The documents are only ever sent over the wire, so a syntax error would
// otherwise surface as an opaque API error at runtime.
func TestQueryDocumentsParse(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"boardColumnsQuery":  boardColumnsQuery,
		"itemsPageQuery":     itemsPageQuery,
		"linkedItemsQuery":   linkedItemsQuery,
		"createItemMutation": createItemMutation,
		"addFileMutation":    addFileMutation,
	}
	for name, doc := range docs {
		name, doc := name, doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			parsed, err := parser.ParseQuery(&ast.Source{Name: name, Input: doc})
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			if len(parsed.Operations) != 1 {
				t.Fatalf("%s: expected exactly one operation, got %d", name, len(parsed.Operations))
			}
		})
	}
}
