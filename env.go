package lispy

import (
	"io"
	"log"
	"os"
	"sort"

	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
	"github.com/xiam/lispy/parser"
)

// Builtin is a named operation that receives already evaluated arguments.
type Builtin func(env *Environment, args []*ast.Node) (*ast.Node, error)

// Option configures an Environment.
type Option func(*Environment)

// WithOutput sets the writer used by print. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(env *Environment) {
		env.out = w
	}
}

// WithLogger sets the logger that traces evaluation. Defaults to a logger
// that discards everything.
func WithLogger(l *log.Logger) Option {
	return func(env *Environment) {
		env.log = l
	}
}

// Environment holds user bindings and the table of builtins. An Environment
// is not safe for concurrent use.
type Environment struct {
	st       *symbolTable
	builtins map[string]Builtin

	out io.Writer
	log *log.Logger
}

// NewEnvironment creates an environment with no bindings and the default set
// of builtins.
func NewEnvironment(opts ...Option) *Environment {
	env := &Environment{
		st:       newSymbolTable(),
		builtins: make(map[string]Builtin),

		out: os.Stdout,
		log: log.New(io.Discard, "", 0),
	}
	for name, fn := range defaultBuiltins {
		env.builtins[name] = fn
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// Lookup returns the value bound to name.
func (env *Environment) Lookup(name string) (*ast.Node, bool) {
	return env.st.Get(name)
}

// Define binds name to value, replacing any previous binding.
func (env *Environment) Define(name string, value *ast.Node) {
	env.log.Printf("define: %s -> %v", name, value)
	env.st.Set(name, value)
}

// Builtin returns the builtin registered under name.
func (env *Environment) Builtin(name string) (Builtin, bool) {
	fn, ok := env.builtins[name]
	return fn, ok
}

// Names returns, sorted, every name that can be used in the environment:
// special forms, builtins and bindings.
func (env *Environment) Names() []string {
	seen := map[string]struct{}{}
	names := []string{}

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range specialForms {
		add(name)
	}
	for name := range env.builtins {
		add(name)
	}
	for _, name := range env.st.Names() {
		add(name)
	}

	sort.Strings(names)
	return names
}

// Eval evaluates node. If evaluation fails, bindings installed while
// evaluating node are discarded and the environment is left as it was.
func (env *Environment) Eval(node *ast.Node) (*ast.Node, error) {
	env.st.begin()

	value, err := Eval(node, env)
	if err != nil {
		env.log.Printf("eval: %v: %v (rolling back)", node, err)
		env.st.rollback()
		return nil, err
	}

	env.st.commit()
	return value, nil
}

// EvalString reads one expression from in, evaluates it and returns its
// printable form. Tokens after the first expression are ignored.
func (env *Environment) EvalString(in string) (string, error) {
	node, rest, err := parser.Parse(lexer.Tokenize(in))
	if err != nil {
		return "", err
	}
	if len(rest) > 0 {
		env.log.Printf("eval: ignoring trailing tokens %q", rest)
	}

	value, err := env.Eval(node)
	if err != nil {
		return "", err
	}

	return ast.Encode(value), nil
}
