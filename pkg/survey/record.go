package survey

import (
	"encoding/json"
	"slices"
)

// Record is one package flowing through the survey.
//
// The exported JSON fields mirror the latest-version document of an npm
// package. Type, Downloads, Prebuilds, Napi and Language are filled in by a
// [Provider] while the record is classified and are never read from input.
type Record struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Description          string            `json:"description,omitempty"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
	Scripts              map[string]string `json:"scripts,omitempty"`
	Gypfile              bool              `json:"gypfile,omitempty"`
	Binary               *Binary           `json:"binary,omitempty"`
	Repository           Repository        `json:"repository"`

	Type      string     `json:"-"`
	Downloads int        `json:"-"`
	Prebuilds []Prebuild `json:"-"`
	Napi      bool       `json:"-"`
	Language  string     `json:"-"`
}

// Binary is the node-pre-gyp "binary" block of package.json.
type Binary struct {
	ModuleName   string `json:"module_name,omitempty"`
	ModulePath   string `json:"module_path,omitempty"`
	Host         string `json:"host,omitempty"`
	NapiVersions []int  `json:"napi_versions,omitempty"`
}

// Prebuild describes one prebuilt binary shipped for a package.
type Prebuild struct {
	Runtime  string `json:"runtime"` // node, electron or napi
	ABI      string `json:"abi"`
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	Libc     string `json:"libc,omitempty"`
	File     string `json:"file"`
}

// Target is the platform-arch[-libc] string the prebuild runs on.
func (p Prebuild) Target() string {
	t := p.Platform + "-" + p.Arch
	if p.Libc != "" {
		t += "-" + p.Libc
	}
	return t
}

// Repository accepts both package.json forms: a bare string and
// {"type": "git", "url": "..."}.
type Repository struct {
	Type string `json:"type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Repository) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Repository{URL: s}
		return nil
	}
	type plain Repository
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		// Anything else (arrays, numbers) carries no usable URL.
		*r = Repository{}
		return nil
	}
	*r = Repository(p)
	return nil
}

// Title identifies the record in diagnostics.
func (r *Record) Title() string {
	if r.Version == "" {
		return r.Name
	}
	return r.Name + "@" + r.Version
}

// DependsOn reports whether name appears in dependencies, optional
// dependencies or dev dependencies.
func (r *Record) DependsOn(name string) bool {
	for _, deps := range []map[string]string{r.Dependencies, r.OptionalDependencies, r.DevDependencies} {
		if _, ok := deps[name]; ok {
			return true
		}
	}
	return false
}

// Platforms returns the distinct prebuild targets, sorted.
func (r *Record) Platforms() []string {
	seen := make(map[string]bool, len(r.Prebuilds))
	var out []string
	for _, p := range r.Prebuilds {
		t := p.Target()
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}
