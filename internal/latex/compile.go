package latex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultBinary is the external compiler invoked for each pass.
	DefaultBinary = "pdflatex"

	// DefaultPassTimeout bounds a single compiler pass.
	DefaultPassTimeout = 30 * time.Second

	// compilePasses is the number of pdflatex passes per document. Documents
	// with cross-references need a second pass to resolve them.
	compilePasses = 2

	// maxConcurrentCompiles caps simultaneous pdflatex processes.
	maxConcurrentCompiles = 4

	// logTailBytes is how much compiler output a CompilationError carries.
	logTailBytes = 4096
)

// Compiler compiles LaTeX documents to PDF via an external pdflatex binary.
// Each compilation runs in its own exclusive working directory, which is
// removed on every exit path. Compilations for different documents may run
// concurrently up to maxConcurrentCompiles.
type Compiler struct {
	binary string

	// PassTimeout bounds each compiler pass. Defaults to DefaultPassTimeout.
	PassTimeout time.Duration

	// WorkRoot is the parent directory for per-invocation working
	// directories. Empty means the system temp directory.
	WorkRoot string

	sem *semaphore.Weighted
}

// NewCompiler verifies the pdflatex binary is available and returns a
// Compiler. Returns an UnavailableError when the binary is missing so the
// caller can fail fast at startup.
func NewCompiler() (*Compiler, error) {
	return NewCompilerWithBinary(DefaultBinary)
}

// NewCompilerWithBinary is NewCompiler with an explicit binary name.
func NewCompilerWithBinary(binary string) (*Compiler, error) {
	if _, err := exec.LookPath(binary); err != nil {
		return nil, &UnavailableError{Binary: binary, Cause: err}
	}
	return &Compiler{
		binary:      binary,
		PassTimeout: DefaultPassTimeout,
		sem:         semaphore.NewWeighted(maxConcurrentCompiles),
	}, nil
}

// Compile writes the document to an isolated working directory, runs the
// compiler twice, and returns the PDF bytes. The working directory is
// removed unconditionally before returning. outputName must not contain
// path separators; it names the source and artifact files.
func (c *Compiler) Compile(ctx context.Context, document string, outputName string) ([]byte, error) {
	if outputName == "" || outputName != filepath.Base(outputName) {
		return nil, &CompilationError{Message: fmt.Sprintf("invalid output name %q", outputName)}
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, &CompilationError{Message: "cancelled while waiting for compiler slot", Cause: err}
	}
	defer c.sem.Release(1)

	workDir, err := os.MkdirTemp(c.WorkRoot, "latex-compile-*")
	if err != nil {
		return nil, &CompilationError{Message: "failed to create working directory", Cause: err}
	}
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			log.Warn().Err(rmErr).Str("dir", workDir).Msg("failed to remove compile working directory")
		}
	}()

	texPath := filepath.Join(workDir, outputName+".tex")
	if err := os.WriteFile(texPath, []byte(document), 0644); err != nil {
		return nil, &CompilationError{Message: "failed to write source file", Cause: err}
	}

	var logOutput string
	for pass := 1; pass <= compilePasses; pass++ {
		logOutput, err = c.runPass(ctx, workDir, texPath)
		if err != nil {
			return nil, err
		}
	}

	pdfPath := filepath.Join(workDir, outputName+".pdf")
	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, &CompilationError{
			Message:   "PDF was not generated",
			LogOutput: tail(logOutput),
			Cause:     err,
		}
	}

	log.Debug().Str("output", outputName).Int("size_bytes", len(pdfBytes)).Msg("compiled LaTeX document")
	return pdfBytes, nil
}

// runPass executes one compiler pass under the per-pass timeout and returns
// the combined compiler output.
func (c *Compiler) runPass(ctx context.Context, workDir, texPath string) (string, error) {
	timeout := c.PassTimeout
	if timeout <= 0 {
		timeout = DefaultPassTimeout
	}
	passCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(passCtx, c.binary, "-interaction=nonstopmode", "-output-directory", workDir, texPath)
	cmd.Dir = workDir

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()
	if runErr != nil {
		if errors.Is(passCtx.Err(), context.DeadlineExceeded) {
			return "", &CompilationError{
				Message:   fmt.Sprintf("compiler pass exceeded %s", timeout),
				LogOutput: tail(output.String()),
				Timeout:   true,
				Cause:     runErr,
			}
		}
		return "", &CompilationError{
			Message:   "compiler exited with an error",
			LogOutput: tail(output.String()),
			Cause:     runErr,
		}
	}
	return output.String(), nil
}

// tail returns the last logTailBytes of compiler output. pdflatex logs are
// verbose and the failure reason is at the end.
func tail(output string) string {
	if len(output) <= logTailBytes {
		return output
	}
	return output[len(output)-logTailBytes:]
}
