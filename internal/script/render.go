package script

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	editorStore     = `"core/editor"`
	currentPostID   = `wp.data.select(` + editorStore + `).getCurrentPostId()`
	tipsDisableSpec = `"#editor button.nux-dot-tip__disable"`
)

// Render serializes op to a self-invoking JavaScript expression. All literals
// it embeds are produced here: strings and objects as strict JSON, positions as
// integers or null.
func Render(op Op) (string, error) {
	switch o := op.(type) {
	case InsertBlock:
		return renderInsertBlock(o)
	case *InsertBlock:
		return renderInsertBlock(*o)
	case SavePost, *SavePost:
		return iife(
			`wp.data.dispatch(`+editorStore+`).savePost();`,
			`return `+currentPostID+`;`,
		), nil
	case EditPost:
		return renderEditPost(o)
	case *EditPost:
		return renderEditPost(*o)
	case DisableTips, *DisableTips:
		return iife(
			`var button = document.querySelector(`+tipsDisableSpec+`);`,
			`if (!button) { return false; }`,
			`button.click();`,
			`return true;`,
		), nil
	case IsSavingPost, *IsSavingPost:
		return iife(`return wp.data.select(` + editorStore + `).isSavingPost();`), nil
	case CurrentPostID, *CurrentPostID:
		return iife(`return ` + currentPostID + `;`), nil
	case nil:
		return "", fmt.Errorf("script: nil operation")
	default:
		return "", fmt.Errorf("script: unsupported operation %T", op)
	}
}

func renderInsertBlock(o InsertBlock) (string, error) {
	if o.Type == "" {
		return "", fmt.Errorf("script: insert block: empty block type")
	}
	blockType, err := json.Marshal(o.Type)
	if err != nil {
		return "", fmt.Errorf("script: insert block: encode type: %w", err)
	}
	props, err := object(o.Props)
	if err != nil {
		return "", fmt.Errorf("script: insert block: encode props: %w", err)
	}

	return iife(
		`var block = wp.blocks.createBlock(`+string(blockType)+`, `+props+`);`,
		`wp.data.dispatch(`+editorStore+`).insertBlock(block, `+Position(o.Position)+`);`,
		`return block.clientId;`,
	), nil
}

func renderEditPost(o EditPost) (string, error) {
	props, err := object(o.Props)
	if err != nil {
		return "", fmt.Errorf("script: edit post: encode props: %w", err)
	}

	return iife(
		`wp.data.dispatch(`+editorStore+`).editPost(`+props+`);`,
		`return `+currentPostID+`;`,
	), nil
}

// Position renders an insertion index, or null to append last
func Position(p *int) string {
	if p == nil {
		return "null"
	}
	return strconv.Itoa(*p)
}

func object(props map[string]any) (string, error) {
	if props == nil {
		return "{}", nil
	}
	b, err := json.Marshal(props)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func iife(statements ...string) string {
	var b strings.Builder
	b.WriteString("(function(){\n")
	for _, s := range statements {
		b.WriteString("\t")
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("})()")
	return b.String()
}
