package progress

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harness/pubcheck/internal/style"
)

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	r.Start("Checking 3 artifacts")
	r.Step("gitea")
	r.Success("api-gateway gitea-container")
	r.Error("common-grpc github-jar (unauthorized)")
	r.End("2/3 passed")

	assert.Equal(t, "⚡ Checking 3 artifacts...\n"+
		"  ▶ gitea...\n"+
		"  ✅ api-gateway gitea-container\n"+
		"  ❌ common-grpc github-jar (unauthorized)\n"+
		"2/3 passed\n", buf.String())
}

func TestConsoleReporterConcurrent(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Success("ok")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, strings.Count(buf.String(), "  ✅ ok\n"))
}

func TestStyledReporterPlain(t *testing.T) {
	style.Init(false)
	defer style.Init(true)

	var buf bytes.Buffer
	r := NewStyledReporter(&buf)
	r.Success("stubs npm")
	r.Error("bom github-jar")
	r.End("")

	out := buf.String()
	assert.Contains(t, out, "✓ stubs npm")
	assert.Contains(t, out, "✗ bom github-jar")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestNewAutoReporterFallsBackWithoutTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()

	assert.IsType(t, &ConsoleReporter{}, NewAutoReporter(f))
}
