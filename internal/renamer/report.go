package renamer

import (
	"fmt"

	"github.com/harrison/renext/internal/filelock"
	"gopkg.in/yaml.v3"
)

// WriteReport writes result as YAML to path, replacing any previous file
// atomically.
func WriteReport(path string, result *Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := filelock.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
