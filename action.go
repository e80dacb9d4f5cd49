package kterm

// ActionTag identifies the kind of an Action and, via actionTable, how many
// arguments the executor unpacks for it. Values match the source's
// term_action_type enum exactly (kernel/char/term.c) so the packed layout
// below stays a direct translation.
type ActionTag uint8

const (
	tagWriteChar ActionTag = iota
	tagMoveCursor
	tagScrollUp
	tagScrollDown
	tagSetColor
)

// Action is the packed 32-bit record the action ring stores: an 8-bit tag
// in the high byte, and either one 24-bit argument or two 12-bit arguments
// in the low 24 bits, selected by the tag. Packing into a single word keeps
// enqueue/dequeue a plain value copy, suitable for a critical section held
// only across a slice write — the same property the source's bitfield
// union gives it in C.
type Action uint32

const (
	actionTagShift = 24
	actionTagMask  = 0xff

	twoArgWidth = 12
	twoArgMask  = (1 << twoArgWidth) - 1
	oneArgMask  = (1 << actionTagShift) - 1
)

func packAction(tag ActionTag, arg uint32) Action {
	if arg > oneArgMask {
		panic("kterm: action argument exceeds 24 bits")
	}
	return Action(uint32(tag)<<actionTagShift | arg)
}

func packAction2(tag ActionTag, arg1, arg2 uint32) Action {
	if arg1 > twoArgMask || arg2 > twoArgMask {
		panic("kterm: action argument exceeds 12 bits")
	}
	return Action(uint32(tag)<<actionTagShift | arg1<<twoArgWidth | arg2)
}

// tag returns the action's type tag.
func (a Action) tag() ActionTag {
	return ActionTag(uint32(a) >> actionTagShift & actionTagMask)
}

// arg returns the action's single 24-bit argument.
func (a Action) arg() uint32 {
	return uint32(a) & oneArgMask
}

// args returns the action's two 12-bit arguments.
func (a Action) args() (uint32, uint32) {
	packed := uint32(a) & oneArgMask
	return packed >> twoArgWidth & twoArgMask, packed & twoArgMask
}

// newWriteCharAction packs a write_char(ch, color) action.
func newWriteCharAction(ch byte, color Attribute) Action {
	return packAction2(tagWriteChar, uint32(ch), uint32(color))
}

// newMoveCursorAction packs a move_cursor(row, col) action. Row and column
// must each fit in 12 bits (<=4095), far beyond any practical geometry.
func newMoveCursorAction(row, col int) Action {
	return packAction2(tagMoveCursor, uint32(row), uint32(col))
}

// newScrollUpAction packs a scroll_up(n) action.
func newScrollUpAction(n uint32) Action {
	return packAction(tagScrollUp, n)
}

// newScrollDownAction packs a scroll_down(n) action.
func newScrollDownAction(n uint32) Action {
	return packAction(tagScrollDown, n)
}

// newSetColorAction packs a set_color(c) action.
func newSetColorAction(c Attribute) Action {
	return packAction(tagSetColor, uint32(c))
}

// actionHandler describes one entry of the executor's dispatch table: how
// many arguments the tag carries, and the renderer method that consumes
// them. Exactly one of oneArg / twoArg is set, selected by arity — the Go
// expression of the source's actions_table[tag] = {func, args_count}.
type actionHandler struct {
	arity  int
	oneArg func(r *renderer, a uint32)
	twoArg func(r *renderer, a1, a2 uint32)
}

// actionTable is the executor's dispatch table. An ActionTag with no entry
// here is a fatal invariant violation: it means a corrupt or out-of-range
// tag reached the ring, which the source treats as NOT_REACHED().
var actionTable = map[ActionTag]actionHandler{
	tagWriteChar: {
		arity: 2,
		twoArg: func(r *renderer, ch, color uint32) {
			r.writeChar(byte(ch), Attribute(color))
		},
	},
	tagMoveCursor: {
		arity: 2,
		twoArg: func(r *renderer, row, col uint32) {
			r.moveCursor(int(row), int(col))
		},
	},
	tagScrollUp: {
		arity: 1,
		oneArg: func(r *renderer, n uint32) {
			r.scrollUp(int(n))
		},
	},
	tagScrollDown: {
		arity: 1,
		oneArg: func(r *renderer, n uint32) {
			r.scrollDown(int(n))
		},
	},
	tagSetColor: {
		arity: 1,
		oneArg: func(r *renderer, c uint32) {
			r.setColor(Attribute(c))
		},
	},
}

// executeAction dispatches a single action to its handler. An unknown tag
// is a fatal invariant violation and halts via panic, the Go analogue of
// the source's NOT_REACHED()/VERIFY.
func executeAction(r *renderer, a Action) {
	h, ok := actionTable[a.tag()]
	if !ok {
		panic("kterm: invalid action tag — corrupt action ring")
	}

	switch h.arity {
	case 1:
		h.oneArg(r, a.arg())
	case 2:
		a1, a2 := a.args()
		h.twoArg(r, a1, a2)
	default:
		panic("kterm: invalid action handler arity")
	}
}
