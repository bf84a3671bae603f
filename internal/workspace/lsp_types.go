package workspace

// Kind is the LSP CompletionItemKind value attached to each item, fixed by
// the symbol variant it was synthesized from.
type Kind int

const (
	KindMethod        Kind = 2
	KindFunction       Kind = 3
	KindField          Kind = 5
	KindVariable       Kind = 6
	KindModule         Kind = 9
	KindEnum           Kind = 13
	KindEnumMember     Kind = 20
	KindConstant       Kind = 21
	KindStruct         Kind = 22
	KindTypeParameter  Kind = 25
)

// InsertTextFormat selects how a client should interpret CompletionItem's
// InsertText. SnippetFormat is the only format this engine ever produces:
// every template item carries $1/$2-style placeholders even when it has
// none, so a client can treat every item uniformly.
type InsertTextFormat int

const SnippetFormat InsertTextFormat = 2

// LabelDetails is the optional trailing annotation shown next to an item's
// label: Detail renders inline (a function's parameter list, a struct's
// field list), Description names the module an item would need a `use`
// clause to reach.
type LabelDetails struct {
	Detail      string `json:"detail,omitempty"`
	Description string `json:"description,omitempty"`
}

// CompletionItem is the wire shape returned to an LSP client, matching the
// textDocument/completion response fields.
type CompletionItem struct {
	Label            string        `json:"label"`
	Kind             Kind          `json:"kind"`
	InsertText       string        `json:"insertText"`
	InsertTextFormat InsertTextFormat `json:"insertTextFormat"`
	Data             int           `json:"data"`
	LabelDetails     *LabelDetails `json:"labelDetails,omitempty"`
}
