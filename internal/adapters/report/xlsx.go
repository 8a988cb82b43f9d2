package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/okian/sportfit/internal/domain/types"
	"github.com/xuri/excelize/v2"
)

const (
	profileSheet         = "Profile"
	recommendationsSheet = "Recommendations"
)

// Renderer builds report documents.
type Renderer struct {
	labels Labeler
	width  float64
	height float64
}

// New creates a Renderer with the given options.
func New(opts ...Option) *Renderer {
	r := &Renderer{labels: passthrough{}, width: 8, height: 4}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// XLSX writes the profile summary and the ranked list to a two-sheet workbook.
func (r *Renderer) XLSX(summary types.ProfileSummary, recs []types.Recommendation, locale string) ([]byte, error) {
	if len(recs) == 0 && len(summary.Attributes) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), profileSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := r.writeProfile(f, summary, locale); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(recommendationsSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := r.writeRecommendations(f, recs, locale); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeProfile(f *excelize.File, s types.ProfileSummary, locale string) error {
	rows := [][]any{
		{r.labels.Label("category", locale), r.labels.Label("score", locale)},
		{r.labels.Label("physical", locale), round1(s.Categories.Physical)},
		{r.labels.Label("technical", locale), round1(s.Categories.Technical)},
		{r.labels.Label("tactical", locale), round1(s.Categories.Tactical)},
		{r.labels.Label("psychological", locale), round1(s.Categories.Psychological)},
		{},
		{r.labels.Label("age_group", locale), s.AgeGroup},
		{r.labels.Label("development_potential", locale), round1(s.DevelopmentPotential)},
		{},
		{r.labels.Label("attribute", locale), r.labels.Label("score", locale)},
	}
	for _, a := range s.Attributes {
		name := a.Label
		if name == "" {
			name = r.labels.Label(a.Attribute, locale)
		}
		rows = append(rows, []any{name, round1(a.Score)})
	}
	return writeRows(f, profileSheet, rows)
}

func (r *Renderer) writeRecommendations(f *excelize.File, recs []types.Recommendation, locale string) error {
	rows := [][]any{{
		r.labels.Label("rank", locale),
		r.labels.Label("sport", locale),
		r.labels.Label("compatibility", locale),
		r.labels.Label("strengths", locale),
		r.labels.Label("development_areas", locale),
	}}
	for _, rec := range recs {
		rows = append(rows, []any{
			rec.Rank,
			rec.SportName,
			rec.Compatibility,
			strings.Join(rec.Strengths, ", "),
			strings.Join(rec.DevelopmentAreas, ", "),
		})
	}
	return writeRows(f, recommendationsSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
