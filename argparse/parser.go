package argparse

import (
	"strings"
)

// Action tells the parser what to do after a handler has seen an event.
type Action int

const (
	// Continue parsing with the next option or token.
	Continue Action = iota
	// Suspend stops parsing successfully. The token being processed and all
	// tokens after it are handed back to the caller unparsed.
	Suspend
)

func (a Action) String() string {
	if a == Suspend {
		return "suspend"
	}
	return "continue"
}

// Event is delivered to the handler once for every option occurrence and for
// every positional token.
type Event struct {
	Option   *Option // nil for positional tokens
	Value    string  // Option argument, or the token itself when positional
	HasValue bool
	Index    int // Index in argv of the token that produced the event
}

// Positional reports whether the event is for a non-option token.
func (e Event) Positional() bool { return e.Option == nil }

// Code returns the option code, or CodePositional.
func (e Event) Code() rune {
	if e.Option == nil {
		return CodePositional
	}
	return e.Option.Code
}

// Handler receives parse events. Returning an error aborts the parse and the
// error is returned from Parse unchanged.
type Handler func(ev Event) (Action, error)

// State is the outcome of a parse.
type State int

const (
	StateCompleted State = iota // Every token was consumed
	StateSuspended              // A handler suspended the parse
	StateFailed                 // A malformed token or a handler error stopped the parse
)

func (s State) String() string {
	switch s {
	case StateCompleted:
		return "completed"
	case StateSuspended:
		return "suspended"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes where a parse ended.
type Result struct {
	State State
	// Index is the argv index where parsing stopped: len(argv) when
	// completed, the suspending token when suspended, the offending token
	// when failed.
	Index int
	// Remainder is argv[Index:] for a suspended parse, nil otherwise.
	Remainder []string
}

// Parser walks an argument vector against an option table. A Parser holds no
// per-parse state and may be reused and shared.
type Parser struct {
	table *Table
}

// NewParser creates a parser for the given table.
func NewParser(table *Table) *Parser {
	return &Parser{table: table}
}

// Table returns the table the parser was built with.
func (p *Parser) Table() *Table { return p.table }

// Parse parses argv, where argv[0] is the program name and is skipped. The
// handler is called for every option and positional token in order. The
// returned error is non-nil exactly when the result state is StateFailed.
func (p *Parser) Parse(argv []string, handler Handler) (Result, error) {
	run := &parseRun{table: p.table, argv: argv, handler: handler, cursor: 1}
	return run.loop()
}

// Parse is a shorthand for NewParser(table).Parse(argv, handler).
func Parse(table *Table, argv []string, handler Handler) (Result, error) {
	return NewParser(table).Parse(argv, handler)
}

// parseRun is the state of a single Parse call.
type parseRun struct {
	table   *Table
	argv    []string
	handler Handler
	cursor  int
}

func (r *parseRun) loop() (Result, error) {
	for r.cursor < len(r.argv) {
		tok := r.argv[r.cursor]

		var act Action
		var err error
		switch {
		case len(tok) >= 2 && tok[0] == '-' && tok[1] == '-':
			act, err = r.long(tok)
		case len(tok) >= 2 && tok[0] == '-':
			act, err = r.short(tok)
		default:
			act, err = r.handler(Event{Value: tok, HasValue: true, Index: r.cursor})
			if err == nil && act == Continue {
				r.cursor++
			}
		}

		if err != nil {
			return Result{State: StateFailed, Index: r.cursor}, err
		}
		if act == Suspend {
			return Result{State: StateSuspended, Index: r.cursor, Remainder: r.argv[r.cursor:]}, nil
		}
	}

	return Result{State: StateCompleted, Index: len(r.argv)}, nil
}

// long handles --name and --name=value.
func (r *parseRun) long(tok string) (Action, error) {
	body := tok[2:]
	name, inline, hasInline := strings.Cut(body, "=")

	opt := r.table.FindByLongName(body)
	if opt == nil {
		return Continue, unrecognizedLongOption(r.table, name, r.cursor)
	}

	ev, external, err := r.resolve(opt, inline, hasInline)
	if err != nil {
		return Continue, err
	}

	act, err := r.handler(ev)
	if err == nil && act == Continue {
		r.advance(external)
	}
	return act, err
}

// short handles a cluster of short options such as -aes. Only the last code of
// a cluster may take an argument, either inline (-ai=100) or from the next
// token (-ai 100). There is no attached form: -i100 is the cluster i,1,0,0.
func (r *parseRun) short(tok string) (Action, error) {
	codes, inline, hasInline := strings.Cut(tok[1:], "=")
	if codes == "" {
		return Continue, unrecognizedOption('=', r.cursor)
	}

	cluster := []rune(codes)
	external := false
	for k, c := range cluster {
		opt := r.table.FindByCode(c)
		if opt == nil {
			return Continue, unrecognizedOption(c, r.cursor)
		}

		var ev Event
		if k < len(cluster)-1 {
			if opt.HasArg {
				return Continue, missingArgument(opt, r.cursor)
			}
			ev = Event{Option: opt, Index: r.cursor}
		} else {
			var err error
			ev, external, err = r.resolve(opt, inline, hasInline)
			if err != nil {
				return Continue, err
			}
		}

		act, err := r.handler(ev)
		if err != nil || act != Continue {
			return act, err
		}
	}

	r.advance(external)
	return Continue, nil
}

// resolve works out the argument of opt for the token at the cursor. It
// reports whether the value was taken from the following token. It never
// moves the cursor.
func (r *parseRun) resolve(opt *Option, inline string, hasInline bool) (Event, bool, error) {
	ev := Event{Option: opt, Index: r.cursor}

	switch {
	case hasInline && opt.HasArg:
		ev.Value, ev.HasValue = inline, true
		return ev, false, nil
	case hasInline:
		return ev, false, unexpectedArgument(opt, r.cursor)
	case opt.HasArg:
		next := r.cursor + 1
		if next >= len(r.argv) || !r.acceptsValue(r.argv[next]) {
			return ev, false, missingArgument(opt, r.cursor)
		}
		ev.Value, ev.HasValue = r.argv[next], true
		return ev, true, nil
	default:
		return ev, false, nil
	}
}

// acceptsValue reports whether tok can be used as a separate option argument.
// Tokens starting with '-' look like options and are refused, except negative
// numbers that do not collide with a short option of the table.
func (r *parseRun) acceptsValue(tok string) bool {
	if !strings.HasPrefix(tok, "-") {
		return true
	}
	if len(tok) < 2 || tok[1] < '0' || tok[1] > '9' {
		return false
	}
	return r.table.FindByCode(rune(tok[1])) == nil
}

func (r *parseRun) advance(external bool) {
	if external {
		r.cursor += 2
		return
	}
	r.cursor++
}
