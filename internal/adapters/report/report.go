// Package report renders recommendation results as spreadsheets and charts.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNothingToExport is returned when a report would be empty.
var ErrNothingToExport = errors.New("nothing to export")

// Content types of the generated documents.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePNG  = "image/png"
)

// Labeler translates heading keys. i18n.Translator satisfies it.
type Labeler interface {
	Label(key, locale string) string
}

type passthrough struct{}

func (passthrough) Label(key, _ string) string { return key }

// FileName returns a unique download name such as sportfit-report-<uuid>.xlsx.
func FileName(prefix, ext string) string {
	if prefix == "" {
		prefix = "sportfit-report"
	}
	return fmt.Sprintf("%s-%s.%s", prefix, uuid.NewString(), strings.TrimPrefix(ext, "."))
}
