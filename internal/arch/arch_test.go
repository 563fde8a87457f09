// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Skipf("go list unavailable: %v", err)
	}
	dec := json.NewDecoder(&out)

	// core/ is domain-only and never reaches into internal/ or cmd/.
	outer := []string{"barsplit/internal/", "barsplit/cmd/"}
	bans := map[string][]string{
		"barsplit/core/": outer,
		"barsplit/pkg/":  outer,
		"barsplit/internal/pipeline": {
			"barsplit/internal/appcore", "barsplit/internal/app",
			"barsplit/internal/cli", "barsplit/internal/writers",
			"barsplit/internal/output", "barsplit/cmd/",
		},
		"barsplit/internal/writers": {
			"barsplit/internal/appcore", "barsplit/internal/app",
			"barsplit/internal/cli", "barsplit/internal/pipeline",
			"barsplit/cmd/",
		},
		"barsplit/internal/output": {
			"barsplit/internal/appcore", "barsplit/internal/app",
			"barsplit/internal/cli", "barsplit/internal/pipeline",
			"barsplit/internal/writers", "barsplit/cmd/",
		},
		"barsplit/internal/diag": {
			"barsplit/internal/appcore", "barsplit/internal/app",
			"barsplit/internal/cli", "barsplit/internal/pipeline",
			"barsplit/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "barsplit/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "barsplit/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
