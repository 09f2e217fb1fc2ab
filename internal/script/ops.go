// Package script describes the remote editor operations the steps perform and
// renders them to the JavaScript evaluated in the browser.
package script

// Kind names an editor operation
type Kind string

// Operation kinds
const (
	KindInsertBlock   Kind = "insert-block"
	KindSavePost      Kind = "save-post"
	KindEditPost      Kind = "edit-post"
	KindDisableTips   Kind = "disable-tips"
	KindIsSavingPost  Kind = "is-saving-post"
	KindCurrentPostID Kind = "current-post-id"
)

// Op is one remote editor operation. The set of operations is closed; Render
// knows how to serialize every one of them.
type Op interface {
	Kind() Kind
	isOp()
}

// InsertBlock creates a block and inserts it into the editor document.
// The script evaluates to the new block's clientId.
type InsertBlock struct {
	// Type is the block name in the form "namespace/name"
	Type string
	// Props initialize the block attributes; nil renders as an empty object
	Props map[string]any
	// Position is the index to insert at; nil appends the block last
	Position *int
}

// SavePost dispatches the editor save action. The script evaluates to the
// current post ID; the save itself completes asynchronously.
type SavePost struct{}

// EditPost sets post properties without saving. The script evaluates to the
// current post ID.
type EditPost struct {
	Props map[string]any
}

// DisableTips dismisses the editor tips, evaluating to whether a tip was dismissed
type DisableTips struct{}

// IsSavingPost evaluates to true while a save is in flight
type IsSavingPost struct{}

// CurrentPostID evaluates to the ID of the post open in the editor
type CurrentPostID struct{}

func (InsertBlock) Kind() Kind   { return KindInsertBlock }
func (SavePost) Kind() Kind      { return KindSavePost }
func (EditPost) Kind() Kind      { return KindEditPost }
func (DisableTips) Kind() Kind   { return KindDisableTips }
func (IsSavingPost) Kind() Kind  { return KindIsSavingPost }
func (CurrentPostID) Kind() Kind { return KindCurrentPostID }

func (InsertBlock) isOp()   {}
func (SavePost) isOp()      {}
func (EditPost) isOp()      {}
func (DisableTips) isOp()   {}
func (IsSavingPost) isOp()  {}
func (CurrentPostID) isOp() {}

// At returns a position for InsertBlock
func At(position int) *int {
	return &position
}
