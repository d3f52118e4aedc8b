package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions are the resume file types the CLI will read. The
// engine itself only ever sees extracted plain text.
var allowedExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
}

// ValidateResumeFile checks a resume file's extension and size against
// the configured limits before it is read.
func (c *Config) ValidateResumeFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q for %s (allowed: txt, pdf, docx)", ext, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	if info.Size() > c.MaxFileSizeBytes {
		return fmt.Errorf("file %s exceeds the %.1f MB size limit",
			path, float64(c.MaxFileSizeBytes)/(1024*1024))
	}
	return nil
}
