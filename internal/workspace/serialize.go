package workspace

import (
	"fmt"
	"strings"

	"github.com/banjo-lang/banjoc/internal/sir"
)

// SerializeItems turns the engine's internal Item list into the LSP wire
// shape, assigning each item's Data field its index so a client's
// completionItem/resolve request (out of scope here) can be matched back.
// Mirrors completion_handler.cpp's per-kind detail/insertText construction.
func SerializeItems(items []Item) []CompletionItem {
	out := make([]CompletionItem, len(items))
	for i, it := range items {
		out[i] = serializeItem(it, i)
	}
	return out
}

func serializeItem(it Item, index int) CompletionItem {
	switch it.Template {
	case funcCallTemplate:
		return serializeFuncCallTemplate(it, index)
	case structLiteralTemplate:
		return serializeStructLiteralTemplate(it, index)
	case structFieldTemplate:
		return serializeStructFieldTemplate(it, index)
	default:
		return serializeSimpleItem(it, index)
	}
}

func serializeSimpleItem(it Item, index int) CompletionItem {
	item := CompletionItem{
		Label:            it.Label,
		Kind:             kindOf(it),
		InsertText:       it.Label,
		InsertTextFormat: SnippetFormat,
		Data:             index,
	}
	attachOrigin(&item, it)
	return item
}

// serializeFuncCallTemplate builds "(p1: T1, p2: T2) -> RT" as the detail
// and "name(${1:p1}, ${2:p2})" as the snippet insert text, restoring the
// signature-preview behavior completion_handler.cpp has and the distilled
// spec dropped.
func serializeFuncCallTemplate(it Item, index int) CompletionItem {
	var params []*sir.ParamSymbol
	var returnType sir.Expr
	switch f := it.Symbol.(type) {
	case *sir.FuncDefSymbol:
		params, returnType = f.Params, f.ReturnType
	case *sir.FuncDeclSymbol:
		params, returnType = f.Params, f.ReturnType
	case *sir.NativeFuncDeclSymbol:
		params, returnType = f.Params, f.ReturnType
	}

	var sig, snippet strings.Builder
	sig.WriteByte('(')
	snippet.WriteString(it.Label)
	snippet.WriteByte('(')
	n := 0
	for _, p := range params {
		if p.IsSelf {
			continue
		}
		if n > 0 {
			sig.WriteString(", ")
			snippet.WriteString(", ")
		}
		n++
		sig.WriteString(p.Name)
		sig.WriteString(": ")
		sig.WriteString(typeLabel(p.Type))
		fmt.Fprintf(&snippet, "${%d:%s}", n, p.Name)
	}
	sig.WriteByte(')')
	snippet.WriteByte(')')
	if returnType != nil {
		sig.WriteString(" -> ")
		sig.WriteString(typeLabel(returnType))
	}

	item := CompletionItem{
		Label:            it.Label,
		Kind:             kindOf(it),
		InsertText:       snippet.String(),
		InsertTextFormat: SnippetFormat,
		Data:             index,
		LabelDetails:     &LabelDetails{Detail: sig.String()},
	}
	attachOrigin(&item, it)
	return item
}

// serializeStructLiteralTemplate builds "Name {\n    f1: $1,\n    f2: $2,\n}"
// as the snippet and "{ f1, f2 }" as the detail.
func serializeStructLiteralTemplate(it Item, index int) CompletionItem {
	sd, _ := it.Symbol.(*sir.StructDefSymbol)

	var snippet, detail strings.Builder
	snippet.WriteString(it.Label)
	snippet.WriteString(" {\n")
	detail.WriteString("{ ")
	if sd != nil {
		for i, f := range sd.Fields {
			if i > 0 {
				detail.WriteString(", ")
			}
			detail.WriteString(f.Name)
			fmt.Fprintf(&snippet, "    %s: $%d,\n", f.Name, i+1)
		}
	}
	detail.WriteString(" }")
	snippet.WriteString("}")

	item := CompletionItem{
		Label:            it.Label,
		Kind:             kindOf(it),
		InsertText:       snippet.String(),
		InsertTextFormat: SnippetFormat,
		Data:             index,
		LabelDetails:     &LabelDetails{Detail: detail.String()},
	}
	attachOrigin(&item, it)
	return item
}

// serializeStructFieldTemplate builds the "name: $1" snippet offered for a
// field an open struct literal hasn't set yet.
func serializeStructFieldTemplate(it Item, index int) CompletionItem {
	return CompletionItem{
		Label:            it.Label + ": ",
		Kind:             KindField,
		InsertText:       fmt.Sprintf("%s: $1", it.Label),
		InsertTextFormat: SnippetFormat,
		Data:             index,
	}
}

// attachOrigin sets labelDetails.description to the originating module path
// when the item came from another module (and so needs a `use` clause to
// reach), preserving any detail a more specific serializer already set.
func attachOrigin(item *CompletionItem, it Item) {
	if it.FromModule == nil {
		return
	}
	if item.LabelDetails == nil {
		item.LabelDetails = &LabelDetails{}
	}
	item.LabelDetails.Description = it.FromModule.Path.String()
}

// typeLabel renders a resolved type expression as source-like text for a
// detail string; a SymbolExpr names its symbol directly, a `&T` reference
// renders with a leading "&".
func typeLabel(t sir.Expr) string {
	switch v := t.(type) {
	case *sir.SymbolExpr:
		return v.Sym.GetName()
	case *sir.UnaryExpr:
		if v.Op == sir.OpRef {
			return "&" + typeLabel(v.Operand)
		}
	}
	return "?"
}

// kindOf maps a symbol's concrete type to the fixed LSP CompletionItemKind
// values, matching completion_handler.cpp's switch exactly (including the
// METHOD vs FUNCTION split on FuncDefSymbol.IsMethod).
// Items with no backing Symbol (a bare submodule-path item) render as
// MODULE, matching what they'd resolve to once `use`d.
func kindOf(it Item) Kind {
	if it.Symbol == nil {
		return KindModule
	}
	switch v := it.Symbol.(type) {
	case *sir.ModuleSymbol:
		return KindModule
	case *sir.FuncDefSymbol:
		if v.IsMethod {
			return KindMethod
		}
		return KindFunction
	case *sir.FuncDeclSymbol, *sir.NativeFuncDeclSymbol:
		return KindFunction
	case *sir.StructDefSymbol:
		return KindStruct
	case *sir.StructFieldSymbol:
		return KindField
	case *sir.UnionDefSymbol, *sir.UnionCaseSymbol:
		return KindStruct
	case *sir.ProtoDefSymbol:
		return KindStruct
	case *sir.EnumDefSymbol:
		return KindEnum
	case *sir.EnumVariantSymbol:
		return KindEnumMember
	case *sir.ConstDefSymbol:
		return KindConstant
	case *sir.VarDeclSymbol, *sir.NativeVarDeclSymbol, *sir.LocalSymbol, *sir.ParamSymbol:
		return KindVariable
	case *sir.GenericParamSymbol, *sir.GenericArgSymbol:
		return KindTypeParameter
	default:
		return KindVariable
	}
}
