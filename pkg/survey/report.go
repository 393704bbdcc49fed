package survey

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Header is the column row of the report table.
var Header = []string{"Name", "Version", "Type", "Prebuilds", "N-API", "Lang", "D/L", "Platforms"}

// ShortNameLimit is the length above which scoped names are shortened.
const ShortNameLimit = 20

// TableFormatter renders rows (header first) as text.
type TableFormatter interface {
	Format(rows [][]string) string
}

// Report is the result of a survey run. It is read-only: every accessor
// works on copies, so rendering the same report twice gives the same output.
type Report struct {
	counters Counters
	admitted []*Record
}

// NewReport builds a report from final counters and the admitted records
// in arrival order.
func NewReport(c Counters, admitted []*Record) *Report {
	return &Report{counters: c, admitted: admitted}
}

// Counters returns the final counters.
func (r *Report) Counters() Counters { return r.counters }

// Summary is the one-line account of the run.
func (r *Report) Summary() string {
	c := r.counters
	return fmt.Sprintf("done (%d raw, %d ignored, %d uncertain, %d unpopular, %d included)",
		c.Seen, c.Excluded, c.Unresolved, c.Unpopular, c.Included)
}

// WriteSummary writes [Report.Summary] followed by a newline.
func (r *Report) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Summary())
	return err
}

// Sorted returns the admitted records by downloads, highest first. Ties
// keep arrival order.
func (r *Report) Sorted() []*Record {
	out := slices.Clone(r.admitted)
	slices.SortStableFunc(out, func(a, b *Record) int {
		return b.Downloads - a.Downloads
	})
	return out
}

// Rows maps the sorted records to table rows, header first.
func (r *Report) Rows() [][]string {
	recs := r.Sorted()
	rows := make([][]string, 0, len(recs)+1)
	rows = append(rows, slices.Clone(Header))
	for _, rec := range recs {
		rows = append(rows, row(rec))
	}
	return rows
}

func row(rec *Record) []string {
	typ := ""
	if rec.Type != "" {
		typ = "`" + rec.Type + "`"
	}
	napi := ""
	if rec.Napi {
		napi = "Yes"
	}
	return []string{
		NpmLink(rec.Name),
		rec.Version,
		typ,
		strconv.Itoa(len(rec.Prebuilds)),
		napi,
		rec.Language,
		strconv.Itoa(rec.Downloads),
		strings.Join(rec.Platforms(), "<br>"),
	}
}

// WriteMarkdown writes the "## Data" section with the table rendered by f.
func (r *Report) WriteMarkdown(w io.Writer, f TableFormatter) error {
	_, err := fmt.Fprintf(w, "## Data\n\n%s\n", f.Format(r.Rows()))
	return err
}

// ShortName shortens long scoped names: "@scope/some-long-name" becomes
// "../some-long-name" once the full name exceeds [ShortNameLimit].
func ShortName(name string) string {
	if len(name) <= ShortNameLimit || !strings.HasPrefix(name, "@") {
		return name
	}
	_, rest, ok := strings.Cut(name, "/")
	if !ok {
		return name
	}
	return "../" + rest
}

// NpmLink renders name as a Markdown link to its npm page.
func NpmLink(name string) string {
	return "[`" + ShortName(name) + "`](https://npmjs.com/package/" + name + ")"
}

// Entry is the machine-readable form of an admitted record.
type Entry struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Type      string     `json:"type"`
	Downloads int        `json:"downloads"`
	Napi      bool       `json:"napi"`
	Language  string     `json:"language,omitempty"`
	Platforms []string   `json:"platforms"`
	Prebuilds []Prebuild `json:"prebuilds"`
}

// Entries returns the sorted admitted records as entries.
func (r *Report) Entries() []Entry {
	recs := r.Sorted()
	out := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		platforms := rec.Platforms()
		if platforms == nil {
			platforms = []string{}
		}
		prebuilds := slices.Clone(rec.Prebuilds)
		if prebuilds == nil {
			prebuilds = []Prebuild{}
		}
		out = append(out, Entry{
			Name:      rec.Name,
			Version:   rec.Version,
			Type:      rec.Type,
			Downloads: rec.Downloads,
			Napi:      rec.Napi,
			Language:  rec.Language,
			Platforms: platforms,
			Prebuilds: prebuilds,
		})
	}
	return out
}
