package latex

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeCompiler installs a shell script named pdflatex on PATH that
// mimics the real compiler's argument contract.
func writeFakeCompiler(t *testing.T, script string) {
	t.Helper()
	binDir := t.TempDir()
	path := filepath.Join(binDir, "pdflatex")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

const successScript = `#!/bin/sh
# args: -interaction=nonstopmode -output-directory DIR TEXFILE
dir="$3"
tex="$4"
base=$(basename "$tex" .tex)
printf '%%PDF-1.4 fake resume' > "$dir/$base.pdf"
echo "Output written on $base.pdf (1 page)."
exit 0
`

const failureScript = `#!/bin/sh
echo "! Undefined control sequence."
echo "l.42 \badmacro"
exit 1
`

func TestNewCompiler_BinaryMissing(t *testing.T) {
	_, err := NewCompilerWithBinary("definitely-not-a-latex-binary")
	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "definitely-not-a-latex-binary", unavailable.Binary)
}

func TestCompile_Success(t *testing.T) {
	writeFakeCompiler(t, successScript)
	compiler, err := NewCompiler()
	require.NoError(t, err)
	workRoot := t.TempDir()
	compiler.WorkRoot = workRoot

	pdf, err := compiler.Compile(context.Background(), "\\documentclass{article}", "resume")
	require.NoError(t, err)
	assert.Contains(t, string(pdf), "%PDF-1.4")

	entries, err := os.ReadDir(workRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "working directory must be removed after success")
}

func TestCompile_FailureCarriesLogAndCleansUp(t *testing.T) {
	writeFakeCompiler(t, failureScript)
	compiler, err := NewCompiler()
	require.NoError(t, err)
	workRoot := t.TempDir()
	compiler.WorkRoot = workRoot

	_, err = compiler.Compile(context.Background(), "\\badmacro", "resume")
	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.False(t, compErr.Timeout)
	assert.Contains(t, compErr.LogOutput, "Undefined control sequence")

	entries, err := os.ReadDir(workRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "working directory must be removed after failure")
}

func TestCompile_Timeout(t *testing.T) {
	writeFakeCompiler(t, "#!/bin/sh\nsleep 5\n")
	compiler, err := NewCompiler()
	require.NoError(t, err)
	workRoot := t.TempDir()
	compiler.WorkRoot = workRoot
	compiler.PassTimeout = 100 * time.Millisecond

	_, err = compiler.Compile(context.Background(), "doc", "resume")
	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.True(t, compErr.Timeout)

	entries, err := os.ReadDir(workRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "working directory must be removed after timeout")
}

func TestCompile_RejectsPathOutputName(t *testing.T) {
	writeFakeCompiler(t, successScript)
	compiler, err := NewCompiler()
	require.NoError(t, err)

	_, err = compiler.Compile(context.Background(), "doc", "../escape")
	var compErr *CompilationError
	assert.ErrorAs(t, err, &compErr)
}

func TestTail_TruncatesLongOutput(t *testing.T) {
	long := make([]byte, logTailBytes*2)
	for i := range long {
		long[i] = 'x'
	}
	long[len(long)-1] = '!'
	result := tail(string(long))
	assert.Len(t, result, logTailBytes)
	assert.Equal(t, byte('!'), result[len(result)-1])
}
