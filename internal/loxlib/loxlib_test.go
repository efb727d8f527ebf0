package loxlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunString_PrintsAndExitsClean(t *testing.T) {
	out, code := RunString(`print "hello";`, Options{})
	assert.Equal(t, "hello\n", out)
	assert.Equal(t, ExitOK, code)
}

func TestRunString_LexErrorExits65(t *testing.T) {
	_, code := RunString("var x = 1 # 2;", Options{})
	assert.Equal(t, ExitStaticError, code)
}

func TestRunString_ParseErrorExits65(t *testing.T) {
	_, code := RunString("var = 1;", Options{})
	assert.Equal(t, ExitStaticError, code)
}

func TestRunString_ResolveErrorExits65(t *testing.T) {
	_, code := RunString("return 1;", Options{})
	assert.Equal(t, ExitStaticError, code)
}

func TestRunString_RuntimeErrorExits70(t *testing.T) {
	_, code := RunString("print 1 / 0;", Options{})
	assert.Equal(t, ExitRuntimeErr, code)
}

func TestSession_PersistsGlobalsAcrossRuns(t *testing.T) {
	var out []byte
	s := NewSession(Options{})
	outBuf := &captureWriter{}
	s.opts.Stdout = outBuf

	code := s.Run("var x = 1;")
	assert.Equal(t, ExitOK, code)

	code = s.Run("print x;")
	assert.Equal(t, ExitOK, code)
	out = outBuf.data
	assert.Equal(t, "1\n", string(out))
}

type captureWriter struct {
	data []byte
}

func (c *captureWriter) Write(p []byte) (int, error) {
	c.data = append(c.data, p...)
	return len(p), nil
}
