package catalogue

import (
	"bytes"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/sportfit/internal/domain/model"
)

//go:embed data/sports.json
var defaultFS embed.FS

// requirements are the 0..100 demand levels of a sport per category.
type requirements struct {
	Biotype       *float64 `json:"biotype,omitempty" yaml:"biotype"`
	Physical      float64  `json:"physical" yaml:"physical"`
	Technical     float64  `json:"technical" yaml:"technical"`
	Tactical      float64  `json:"tactical" yaml:"tactical"`
	Psychological float64  `json:"psychological" yaml:"psychological"`
}

// record is one sport as stored in JSON or YAML files.
type record struct {
	Name            string                 `json:"name" yaml:"name"`
	Category        string                 `json:"category" yaml:"category"`
	Gender          string                 `json:"gender,omitempty" yaml:"gender"`
	Requirements    *requirements          `json:"requirements,omitempty" yaml:"requirements"`
	KeyAttributes   []string               `json:"key_attributes,omitempty" yaml:"key_attributes"`
	Tags            []string               `json:"tags,omitempty" yaml:"tags"`
	ReferenceRanges map[string]model.Range `json:"reference_ranges,omitempty" yaml:"reference_ranges"`
}

type document struct {
	Sports []record `json:"sports" yaml:"sports"`
}

// Load reads a catalogue file, choosing the decoder by extension.
func Load(path string) (*MemoryStore, error) {
	f, err := os.Open(path) //nolint:gosec // operator supplied path
	if err != nil {
		return nil, fmt.Errorf("open catalogue %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var sports []model.SportCandidate
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		sports, err = DecodeJSON(f)
	case ".yaml", ".yml":
		sports, err = DecodeYAML(f)
	case ".csv":
		sports, err = DecodeCSV(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("load catalogue %q: %w", path, err)
	}
	return newStore(sports)
}

// LoadDefault returns the catalogue compiled into the binary.
func LoadDefault() (*MemoryStore, error) {
	b, err := defaultFS.ReadFile("data/sports.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalogue: %w", err)
	}
	sports, err := DecodeJSON(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return newStore(sports)
}

func newStore(sports []model.SportCandidate) (*MemoryStore, error) {
	if len(sports) == 0 {
		return nil, ErrEmpty
	}
	return NewMemoryStore(sports), nil
}

// DecodeJSON reads {"sports":[...]}.
func DecodeJSON(r io.Reader) ([]model.SportCandidate, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fromRecords(doc.Sports)
}

// DecodeYAML reads the same document shape as DecodeJSON.
func DecodeYAML(r io.Reader) ([]model.SportCandidate, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fromRecords(doc.Sports)
}

// DecodeCSV reads an events table with a header row. The "event" column is
// required; "category", "gender", "key_attributes" and "tags" are optional,
// list cells are separated by ';'.
func DecodeCSV(r io.Reader) ([]model.SportCandidate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	eventCol, ok := col["event"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"event\" column", ErrMalformed)
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	list := func(v string) []string {
		if v == "" {
			return nil
		}
		return strings.Split(v, ";")
	}

	var records []record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if eventCol >= len(row) {
			continue
		}
		records = append(records, record{
			Name:          strings.TrimSpace(row[eventCol]),
			Category:      cell(row, "category"),
			Gender:        cell(row, "gender"),
			KeyAttributes: list(cell(row, "key_attributes")),
			Tags:          list(cell(row, "tags")),
		})
	}
	return fromRecords(records)
}

func fromRecords(records []record) ([]model.SportCandidate, error) {
	out := make([]model.SportCandidate, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		s, err := rec.candidate()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// candidate resolves a record into a tagged catalogue entry. Reference
// ranges must name known attributes.
func (rec record) candidate() (model.SportCandidate, error) {
	name := strings.TrimSpace(rec.Name)
	s := model.SportCandidate{
		EventName:     name,
		Category:      parseCategory(rec.Category, name),
		Gender:        ParseEventGender(name),
		Tags:          KeywordTags(name),
		KeyAttributes: parseKeyAttributes(rec.KeyAttributes),
	}
	if s.Gender == model.EventNeutral {
		s.Gender = declaredGender(rec.Gender)
	}
	for _, t := range rec.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			s.Tags[model.Tag(t)] = struct{}{}
		}
	}
	if len(rec.ReferenceRanges) > 0 {
		s.ReferenceRanges = make(map[model.Attribute]model.Range, len(rec.ReferenceRanges))
		for k, r := range rec.ReferenceRanges {
			attr := model.Attribute(strings.ToLower(strings.TrimSpace(k)))
			if !attr.Valid() {
				return model.SportCandidate{}, fmt.Errorf("%w: %s: unknown reference range attribute %q", ErrMalformed, name, k)
			}
			if r.Min >= r.Max {
				return model.SportCandidate{}, fmt.Errorf("%w: %s: reference range %q needs min < max", ErrMalformed, name, k)
			}
			s.ReferenceRanges[attr] = r
		}
	}
	if rq := rec.Requirements; rq != nil {
		s.RequirementWeights = rq.weights()
	}
	return s, nil
}

// weights converts demand levels into scoring weights. Files without a
// biotype level give biotype the mean of the other four.
func (rq requirements) weights() *model.Weights {
	w := model.Weights{
		Physical:      rq.Physical,
		Technical:     rq.Technical,
		Tactical:      rq.Tactical,
		Psychological: rq.Psychological,
	}
	if rq.Biotype != nil {
		w.Biotype = *rq.Biotype
	} else {
		w.Biotype = w.Sum() / 4
	}
	if _, ok := w.Normalized(); !ok {
		return nil
	}
	return &w
}

func declaredGender(v string) model.EventGender {
	switch model.EventGender(strings.ToLower(strings.TrimSpace(v))) {
	case model.EventMale:
		return model.EventMale
	case model.EventFemale:
		return model.EventFemale
	case model.EventMixed:
		return model.EventMixed
	default:
		return model.EventNeutral
	}
}
