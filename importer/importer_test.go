/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package importer

import (
	"errors"
	"fmt"
	"testing"

	"bennypowers.dev/yevu/internal/mapfs"
)

// scriptedModules is a ModuleResolver with canned answers, for driving
// the package strategy without a node_modules tree.
type scriptedModules struct {
	results  map[string]string
	failures map[string]error
}

type absence struct{ request string }

func (e *absence) Error() string  { return fmt.Sprintf("cannot find module %q", e.request) }
func (e *absence) NotFound() bool { return true }

func (s *scriptedModules) Resolve(request, basedir string) (string, error) {
	key := basedir + "!" + request
	if err, ok := s.failures[key]; ok {
		return "", err
	}
	if path, ok := s.results[key]; ok {
		return path, nil
	}
	return "", &absence{request: request}
}

func newTestImporter(t *testing.T, mfs *mapfs.MapFileSystem, modules *scriptedModules) *Importer {
	t.Helper()
	if modules == nil {
		modules = &scriptedModules{}
	}
	im, err := New(Options{
		Root:    "/proj",
		FS:      mfs,
		Modules: modules,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return im
}

func TestResolve_RelativeToImportingFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/foo.scss", "", 0644)

	im := newTestImporter(t, mfs, nil)

	result, err := im.Resolve("foo", "/proj/src/main.scss", ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.File != "/proj/src/foo.scss" {
		t.Errorf("File = %q, want %q", result.File, "/proj/src/foo.scss")
	}
}

func TestResolve_ExtendedSpecifierUnchanged(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/bar.scss", "", 0644)

	im := newTestImporter(t, mfs, nil)

	result, err := im.Resolve("bar.scss", "/proj/src/main.scss", ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/proj/src/bar.scss" {
		t.Fatalf("result = %+v, want /proj/src/bar.scss", result)
	}
}

func TestResolve_IncludePathOrderWins(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/a/shared.scss", "first", 0644)
	mfs.AddFile("/b/shared.scss", "second", 0644)

	im := newTestImporter(t, mfs, nil)

	result, err := im.Resolve("shared", "/proj/src/main.scss", ResolveOptions{
		IncludePaths: []string{"/a", "/b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/a/shared.scss" {
		t.Fatalf("result = %+v, want the first include path to win", result)
	}
}

func TestResolve_AnyLocalMatchBeatsAnyPackageMatch(t *testing.T) {
	// A package match at the first base must lose to a local match at a
	// later base: every local attempt runs before any package attempt.
	mfs := mapfs.New()
	mfs.AddFile("/b/lib.scss", "", 0644)

	modules := &scriptedModules{results: map[string]string{
		"/a!lib.scss": "/a/node_modules/lib.scss",
	}}
	im := newTestImporter(t, mfs, modules)

	result, err := im.Resolve("lib", "/proj/src/main.scss", ResolveOptions{
		IncludePaths: []string{"/a", "/b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/b/lib.scss" {
		t.Fatalf("result = %+v, want the local match at /b", result)
	}
}

func TestResolve_PackageFallback(t *testing.T) {
	mfs := mapfs.New()

	modules := &scriptedModules{results: map[string]string{
		"/proj!some-lib": "/proj/node_modules/some-lib/index.scss",
	}}
	im := newTestImporter(t, mfs, modules)

	result, err := im.Resolve("some-lib", "/proj/src/main.scss", ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/proj/node_modules/some-lib/index.scss" {
		t.Fatalf("result = %+v, want the package resolution", result)
	}
}

func TestResolve_NoResult(t *testing.T) {
	mfs := mapfs.New()

	im := newTestImporter(t, mfs, nil)

	result, err := im.Resolve("nowhere", "/proj/src/main.scss", ResolveOptions{})
	if err != nil {
		t.Fatalf("expected soft no-result, got error %v", err)
	}
	if result != nil {
		t.Fatalf("expected nil result, got %+v", result)
	}
}

func TestResolve_FatalWhenAnAttemptFailed(t *testing.T) {
	mfs := mapfs.New()

	parseErr := errors.New("parsing /proj/node_modules/broken/package.json: unexpected end of JSON input")
	modules := &scriptedModules{failures: map[string]error{
		"/proj!broken": parseErr,
	}}
	im := newTestImporter(t, mfs, modules)

	result, err := im.Resolve("broken", "/proj/src/main.scss", ResolveOptions{})
	if result != nil {
		t.Fatalf("success path must not fire on fatal failure, got %+v", result)
	}
	if err == nil {
		t.Fatal("expected a fatal error")
	}

	want := "Could not find file: broken from parent /proj/src/main.scss"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %T, want *NotFoundError", err)
	}
	if !errors.Is(err, parseErr) {
		t.Errorf("carried error not reachable via errors.Is: %v", err)
	}
}

func TestResolve_ExactlyOneOutcome(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/src/foo.scss", "", 0644)

	modules := &scriptedModules{failures: map[string]error{
		"/proj!foo.scss": errors.New("boom"),
	}}
	im := newTestImporter(t, mfs, modules)

	// A success must discard any error a later attempt would have
	// produced: the stack short-circuits before the package attempts run.
	result, err := im.Resolve("foo", "/proj/src/main.scss", ResolveOptions{})
	if err != nil {
		t.Fatalf("success and error together: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
}

func TestResolve_ToleratesUnrealPreviousFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/theme.scss", "", 0644)

	im := newTestImporter(t, mfs, nil)

	// Compilation started from an in-memory string: prevFile is a
	// placeholder, not a real file.
	result, err := im.Resolve("theme", "stdin", ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/proj/theme.scss" {
		t.Fatalf("result = %+v, want the root match", result)
	}
}

func TestResolve_EmptyPreviousFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/base.scss", "", 0644)

	im := newTestImporter(t, mfs, nil)

	result, err := im.Resolve("base", "", ResolveOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/proj/base.scss" {
		t.Fatalf("result = %+v, want the root match", result)
	}
}

func TestResolve_EmptyIncludePathsFiltered(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/base.scss", "", 0644)

	im := newTestImporter(t, mfs, nil)

	result, err := im.Resolve("base", "", ResolveOptions{
		IncludePaths: []string{"", "", ""},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.File != "/proj/base.scss" {
		t.Fatalf("result = %+v, want the root match", result)
	}
}

func TestNew_Defaults(t *testing.T) {
	im, err := New(Options{Root: "/proj"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if im.Extension() != ".scss" {
		t.Errorf("Extension() = %q, want %q", im.Extension(), ".scss")
	}
	if im.Root() != "/proj" {
		t.Errorf("Root() = %q, want %q", im.Root(), "/proj")
	}
}

func TestNew_ExtensionGainsLeadingDot(t *testing.T) {
	im, err := New(Options{Root: "/proj", Extension: "sass"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if im.Extension() != ".sass" {
		t.Errorf("Extension() = %q, want %q", im.Extension(), ".sass")
	}
}

func TestNew_RootDefaultsToWorkingDirectory(t *testing.T) {
	im, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if im.Root() == "" {
		t.Error("expected a non-empty default root")
	}
}
