package native

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/addonscan/pkg/cache"
	"github.com/matzehuels/addonscan/pkg/integrations/github"
	"github.com/matzehuels/addonscan/pkg/integrations/npm"
	"github.com/matzehuels/addonscan/pkg/survey"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		rec  survey.Record
		want string
	}{
		{
			"prebuildify",
			survey.Record{
				Dependencies:    map[string]string{"node-gyp-build": "^4.0.0"},
				DevDependencies: map[string]string{"prebuildify": "^5.0.0"},
			},
			TypePrebuildify,
		},
		{
			"node-gyp-build alone is plain node-gyp",
			survey.Record{
				Dependencies: map[string]string{"node-gyp-build": "^4.0.0"},
				Scripts:      map[string]string{"install": "node-gyp-build"},
			},
			TypeNodeGyp,
		},
		{"prebuild", survey.Record{Dependencies: map[string]string{"prebuild-install": "^7"}}, TypePrebuild},
		{"node-pre-gyp", survey.Record{Dependencies: map[string]string{"@mapbox/node-pre-gyp": "^1"}}, TypeNodePreGyp},
		{"cmake-js", survey.Record{Dependencies: map[string]string{"cmake-js": "^7"}}, TypeCmakeJS},
		{"neon", survey.Record{DevDependencies: map[string]string{"@neon-rs/cli": "^0.1"}}, TypeNeon},
		{"napi-rs", survey.Record{DevDependencies: map[string]string{"@napi-rs/cli": "^2"}}, TypeNapiRS},
		{"gypfile", survey.Record{Gypfile: true}, TypeNodeGyp},
		{"postinstall", survey.Record{Scripts: map[string]string{"postinstall": "node-gyp rebuild"}}, TypeNodeGyp},
		{"test script does not count", survey.Record{Scripts: map[string]string{"test": "node-gyp rebuild && tape"}}, ""},
		{"pure js", survey.Record{Dependencies: map[string]string{"lodash": "^4"}}, ""},
		{
			"first rule wins",
			survey.Record{
				Dependencies: map[string]string{"prebuild-install": "^7"},
				Gypfile:      true,
			},
			TypePrebuild,
		},
	}

	for _, tt := range tests {
		if got := DetectType(&tt.rec); got != tt.want {
			t.Errorf("%s: DetectType() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDeclaresNapi(t *testing.T) {
	tests := []struct {
		rec  survey.Record
		want bool
	}{
		{survey.Record{Binary: &survey.Binary{NapiVersions: []int{3}}}, true},
		{survey.Record{Binary: &survey.Binary{ModuleName: "x"}}, false},
		{survey.Record{Dependencies: map[string]string{"node-addon-api": "^7"}}, true},
		{survey.Record{Dependencies: map[string]string{"napi-macros": "^2"}}, true},
		{survey.Record{Dependencies: map[string]string{"nan": "^2"}}, false},
	}

	for i, tt := range tests {
		if got := DeclaresNapi(&tt.rec); got != tt.want {
			t.Errorf("case %d: DeclaresNapi() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestParseAsset(t *testing.T) {
	tests := []struct {
		name string
		want survey.Prebuild
		ok   bool
	}{
		{
			"leveldown-v5.6.0-node-v64-linux-x64.tar.gz",
			survey.Prebuild{Runtime: "node", ABI: "64", Platform: "linux", Arch: "x64"},
			true,
		},
		{
			"sharp-v0.33.5-napi-v9-linuxmusl-arm64.tar.gz",
			survey.Prebuild{Runtime: "napi", ABI: "9", Platform: "linux", Libc: "musl", Arch: "arm64"},
			true,
		},
		{
			"bufferutil-v4.0.1-electron-v69-win32-ia32.tar.gz",
			survey.Prebuild{Runtime: "electron", ABI: "69", Platform: "win32", Arch: "ia32"},
			true,
		},
		{
			"foo-v1.0.0-beta.1-napi-v3-linux-x64.tar.gz",
			survey.Prebuild{Runtime: "napi", ABI: "3", Platform: "linux", Arch: "x64"},
			true,
		},
		{
			"canvas-v3.0.0-rc.2-node-v115-darwin-arm64.tar.gz",
			survey.Prebuild{Runtime: "node", ABI: "115", Platform: "darwin", Arch: "arm64"},
			true,
		},
		{"checksums.txt", survey.Prebuild{}, false},
		{"leveldown-v5.6.0.zip", survey.Prebuild{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseAsset(tt.name)
		if ok != tt.ok {
			t.Errorf("ParseAsset(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok {
			tt.want.File = tt.name
		}
		if got != tt.want {
			t.Errorf("ParseAsset(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

type fakeRegistry struct {
	server   *httptest.Server
	requests []string
}

func newFakeRegistry(t *testing.T) *fakeRegistry {
	t.Helper()
	f := &fakeRegistry{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.requests = append(f.requests, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/downloads/point/last-month/*", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "*")
		counts := map[string]int{"leveldown": 250000, "@serialport/bindings-cpp": 900000}
		n, ok := counts[name]
		if !ok {
			http.NotFound(w, req)
			return
		}
		json.NewEncoder(w).Encode(npm.Downloads{Package: name, Downloads: n})
	})
	r.Get("/repos/Level/leveldown", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(github.Repo{FullName: "Level/leveldown", Language: "C++"})
	})
	r.Get("/repos/Level/leveldown/releases/tags/v6.1.1", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(github.Release{
			TagName: "v6.1.1",
			Assets: []github.Asset{
				{Name: "leveldown-v6.1.1-napi-v3-linux-x64.tar.gz"},
				{Name: "leveldown-v6.1.1-napi-v3-darwin-x64.tar.gz"},
				{Name: "leveldown-v6.1.1-napi-v3-linux-x64.tar.gz.sha256"},
			},
		})
	})
	r.Get("/repos/Level/leveldown/releases/tags/{tag}", http.NotFound)
	r.Get("/repos/Level/leveldown/releases/latest", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(github.Release{
			TagName: "v6.2.0",
			Assets:  []github.Asset{{Name: "leveldown-v6.2.0-node-v93-win32-x64.tar.gz"}},
		})
	})
	r.Get("/repos/ghost/gone", http.NotFound)
	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRegistry) provider() *Provider {
	n := npm.NewClient(cache.NewNullCache(), time.Hour)
	n.SetBaseURL(f.server.URL)
	gh := github.NewClient(cache.NewNullCache(), "", time.Hour)
	gh.SetBaseURL(f.server.URL)
	return New(n, gh, WithLogger(log.New(io.Discard)))
}

func TestFetchDownloads(t *testing.T) {
	p := newFakeRegistry(t).provider()
	ctx := context.Background()

	rec := &survey.Record{Name: "@serialport/bindings-cpp"}
	if err := p.FetchDownloads(ctx, rec); err != nil {
		t.Fatalf("FetchDownloads: %v", err)
	}
	if rec.Downloads != 900000 {
		t.Errorf("Downloads = %d, want 900000", rec.Downloads)
	}

	if err := p.FetchDownloads(ctx, &survey.Record{Name: "unpublished"}); err == nil {
		t.Error("expected error for unknown package")
	}
}

func TestFetchPrebuilds(t *testing.T) {
	p := newFakeRegistry(t).provider()

	rec := &survey.Record{
		Name:       "leveldown",
		Version:    "6.1.1",
		Repository: survey.Repository{Type: "git", URL: "git+https://github.com/Level/leveldown.git"},
	}
	if err := p.FetchPrebuilds(context.Background(), rec); err != nil {
		t.Fatalf("FetchPrebuilds: %v", err)
	}
	if len(rec.Prebuilds) != 2 {
		t.Errorf("len(Prebuilds) = %d, want 2", len(rec.Prebuilds))
	}
	if !rec.Napi {
		t.Error("Napi = false, want true from napi prebuilds")
	}
	if rec.Language != "C++" {
		t.Errorf("Language = %q, want C++", rec.Language)
	}
	if got := rec.Platforms(); !slices.Equal(got, []string{"darwin-x64", "linux-x64"}) {
		t.Errorf("Platforms() = %v", got)
	}
}

func TestFetchPrebuildsFallsBackToLatest(t *testing.T) {
	p := newFakeRegistry(t).provider()

	rec := &survey.Record{Name: "leveldown", Version: "9.9.9", Repository: survey.Repository{URL: "Level/leveldown"}}
	if err := p.FetchPrebuilds(context.Background(), rec); err != nil {
		t.Fatalf("FetchPrebuilds: %v", err)
	}
	if len(rec.Prebuilds) != 1 || rec.Prebuilds[0].Platform != "win32" {
		t.Errorf("Prebuilds = %+v, want the latest release's win32 build", rec.Prebuilds)
	}
	if rec.Napi {
		t.Error("Napi = true, want false for node-only prebuilds")
	}
}

func TestFetchPrebuildsNoRepository(t *testing.T) {
	f := newFakeRegistry(t)
	p := f.provider()

	rec := &survey.Record{
		Name:         "local-addon",
		Dependencies: map[string]string{"node-addon-api": "^7"},
		Repository:   survey.Repository{URL: "https://gitlab.com/someone/local-addon"},
	}
	err := p.FetchPrebuilds(context.Background(), rec)
	if !errors.Is(err, ErrNoRepository) {
		t.Fatalf("err = %v, want ErrNoRepository", err)
	}
	if err.Error() != "no github repository" {
		t.Errorf("message = %q", err.Error())
	}
	if !rec.Napi {
		t.Error("declared N-API lost on failed lookup")
	}
	if len(f.requests) != 0 {
		t.Errorf("requests = %v, want none", f.requests)
	}
}

func TestFetchPrebuildsMissingRepo(t *testing.T) {
	p := newFakeRegistry(t).provider()

	rec := &survey.Record{Name: "gone", Version: "1.0.0", Repository: survey.Repository{URL: "github:ghost/gone"}}
	if err := p.FetchPrebuilds(context.Background(), rec); err == nil {
		t.Fatal("expected error for missing repository")
	}
	if len(rec.Prebuilds) != 0 {
		t.Errorf("Prebuilds = %+v, want none", rec.Prebuilds)
	}
}

func TestDetectTypeSetsRecord(t *testing.T) {
	p := New(nil, nil)
	rec := &survey.Record{Gypfile: true}
	if !p.DetectType(rec) || rec.Type != TypeNodeGyp {
		t.Errorf("DetectType: type = %q", rec.Type)
	}
	rec = &survey.Record{}
	if p.DetectType(rec) || rec.Type != "" {
		t.Errorf("DetectType on pure js: type = %q", rec.Type)
	}
}
