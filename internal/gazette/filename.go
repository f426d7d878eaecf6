package gazette

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Gazette PDFs are named like "gg52724_23May2025.pdf". Current gazette
// numbers are five digits starting with 5; the pattern guards against the
// number being a slice of a longer digit run.
var gazetteNumberPattern = regexp.MustCompile(`(^|\D)(5\d{4})(\D|$)`)

// ExtractGazetteNumber pulls the gazette number out of a filename.
func ExtractGazetteNumber(filename string) (int, error) {
	m := gazetteNumberPattern.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return 0, fmt.Errorf("no gazette number in filename %q", filename)
	}
	return strconv.Atoi(m[2])
}

// IsValidGazetteFilename reports whether a filename looks like a gazette PDF.
func IsValidGazetteFilename(filename string) bool {
	base := filepath.Base(filename)
	if !strings.EqualFold(filepath.Ext(base), ".pdf") {
		return false
	}
	return gazetteNumberPattern.MatchString(base)
}

// Locator resolves a gazette number to the PDF path holding it.
type Locator interface {
	Locate(gazetteNumber int) (string, error)
}

// DirLocator finds gazette PDFs by scanning a directory for files whose name
// embeds the gazette number.
type DirLocator struct {
	Dir string
}

func (l DirLocator) Locate(gazetteNumber int) (string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return "", fmt.Errorf("reading gazette directory %s: %w", l.Dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !IsValidGazetteFilename(e.Name()) {
			continue
		}
		n, err := ExtractGazetteNumber(e.Name())
		if err != nil {
			continue
		}
		if n == gazetteNumber {
			return filepath.Join(l.Dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("no gazette PDF for %d under %s", gazetteNumber, l.Dir)
}
