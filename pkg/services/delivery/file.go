// Package delivery writes, zips, mails and exports assembled reports.
// Delivery failures are warnings at the call site; they never abort the
// remaining subjects or the run.
package delivery

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/fleet-report/pkg/services/report/assemble"
)

// WriteFiles writes the assembly result to dir: combined output as
// report.html, per-subject output as <subject>.html. It returns the
// written paths.
func WriteFiles(dir string, result *assemble.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("delivery: creating %s: %w", dir, err)
	}

	var paths []string
	if result.Combined != "" {
		path := filepath.Join(dir, "report.html")
		if err := os.WriteFile(path, []byte(result.Combined), 0o644); err != nil {
			return paths, fmt.Errorf("delivery: writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	for subject, doc := range result.PerSubject {
		path := filepath.Join(dir, subject+".html")
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return paths, fmt.Errorf("delivery: writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Zip packs the given files into one archive at zipPath, storing each
// entry under its base name.
func Zip(zipPath string, files []string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("delivery: creating %s: %w", zipPath, err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("delivery: reading %s: %w", file, err)
		}
		entry, err := w.Create(filepath.Base(file))
		if err != nil {
			return fmt.Errorf("delivery: adding %s: %w", file, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("delivery: writing %s: %w", file, err)
		}
	}
	return w.Close()
}
