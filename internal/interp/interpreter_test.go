package interp

import (
	"bytes"
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, resolves, and interprets src, returning everything
// written to stdout via `print`. Any lex/parse/resolve error fails the
// test immediately: these tests exercise the interpreter, not earlier
// pipeline stages.
func run(t *testing.T, src string) string {
	t.Helper()

	tokens, lexErrs := lexer.ScanTokens(src)
	require.Empty(t, lexErrs)

	p := parser.New(tokens)
	program := p.Parse()
	require.Empty(t, p.Errors())

	r := resolver.New(false)
	locals, resolveErrs := r.Resolve(program)
	require.Empty(t, resolveErrs)

	var out bytes.Buffer
	interp := New(locals)
	interp.SetOutput(&out)

	runtimeErr := interp.Interpret(program)
	require.Nil(t, runtimeErr, "unexpected runtime error: %v", runtimeErr)

	return out.String()
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	assert.Equal(t, "7\n", run(t, "print 1 + 2 * 3;"))
}

func TestInterpret_StringConcatenation(t *testing.T) {
	assert.Equal(t, "hello world\n", run(t, `print "hello" + " " + "world";`))
}

func TestInterpret_StringNumberConcatenationEitherOrder(t *testing.T) {
	assert.Equal(t, "x = 1\n", run(t, `print "x = " + 1;`))
	assert.Equal(t, "1x\n", run(t, `print 1 + "x";`))
}

func TestInterpret_TruthinessAndTernary(t *testing.T) {
	assert.Equal(t, "yes\n", run(t, `print nil ? "no" : "yes";`))
	assert.Equal(t, "yes\n", run(t, `print 0 ? "yes" : "no";`))
}

func TestInterpret_WhileAndBreak(t *testing.T) {
	src := `
	var i = 0;
	while (true) {
		if (i >= 3) break;
		print i;
		i = i + 1;
	}
	`
	assert.Equal(t, "0\n1\n2\n", run(t, src))
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	src := `for (var i = 0; i < 3; i = i + 1) print i;`
	assert.Equal(t, "0\n1\n2\n", run(t, src))
}

func TestInterpret_ClosureCapturesEnvironment(t *testing.T) {
	src := `
	fun makeCounter() {
		var count = 0;
		fun counter() {
			count = count + 1;
			return count;
		}
		return counter;
	}
	var c = makeCounter();
	print c();
	print c();
	`
	assert.Equal(t, "1\n2\n", run(t, src))
}

func TestInterpret_ClassInitAndMethods(t *testing.T) {
	src := `
	class Greeter {
		init(name) {
			this.name = name;
		}
		greet() {
			return "hi " + this.name;
		}
	}
	var g = Greeter("Ada");
	print g.greet();
	`
	assert.Equal(t, "hi Ada\n", run(t, src))
}

func TestInterpret_Inheritance(t *testing.T) {
	src := `
	class Animal {
		speak() {
			return "...";
		}
	}
	class Dog < Animal {
		speak() {
			return "woof";
		}
		parentSpeak() {
			return super.speak();
		}
	}
	var d = Dog();
	print d.speak();
	print d.parentSpeak();
	`
	assert.Equal(t, "woof\n...\n", run(t, src))
}

func TestInterpret_RuntimeErrorOnUndefinedVariable(t *testing.T) {
	tokens, _ := lexer.ScanTokens("print undefined_name;")
	p := parser.New(tokens)
	program := p.Parse()
	require.Empty(t, p.Errors())

	r := resolver.New(false)
	locals, resolveErrs := r.Resolve(program)
	require.Empty(t, resolveErrs)

	interp := New(locals)
	var out bytes.Buffer
	interp.SetOutput(&out)

	runtimeErr := interp.Interpret(program)
	require.NotNil(t, runtimeErr)
	assert.Contains(t, runtimeErr.Message, "undefined variable")
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	tokens, _ := lexer.ScanTokens("print 1 / 0;")
	p := parser.New(tokens)
	program := p.Parse()
	r := resolver.New(false)
	locals, _ := r.Resolve(program)

	interp := New(locals)
	runtimeErr := interp.Interpret(program)
	require.NotNil(t, runtimeErr)
	assert.Contains(t, runtimeErr.Message, "division by zero")
}
