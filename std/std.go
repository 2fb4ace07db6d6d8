// Package std holds the import registry: the capabilities a Krait program
// can name and the Rust `use` lines, Cargo dependencies and features each
// one brings in.
package std

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/krait-lang/krait/frontend/lexer"
)

//go:embed libraries.toml
var librariesToml string

// Library describes one capability.
type Library struct {
	Key        string   `toml:"key" validate:"required,krait_word"`
	Name       string   `toml:"name" validate:"required"`
	Crate      string   `toml:"crate" validate:"required"`
	Dependency string   `toml:"dependency" validate:"required"`
	Imports    []string `toml:"imports" validate:"required,min=1,dive,required"`
	Features   []string `toml:"features"`
}

type libraryTable struct {
	Library []Library `toml:"library" validate:"required,dive"`
}

// Registry maps capability keys to libraries. A Registry is never mutated
// after construction, so it is safe for concurrent use.
type Registry struct {
	libs map[string]Library
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		libs, err := DecodeLibraries(librariesToml)
		if err != nil {
			panic(fmt.Errorf("std: bad embedded library table: %w", err))
		}
		defaultRegistry = New(libs...)
	})
	return defaultRegistry
}

// DecodeLibraries parses and validates a TOML table of [[library]] entries.
func DecodeLibraries(content string) ([]Library, error) {
	var table libraryTable
	if _, err := toml.Decode(content, &table); err != nil {
		return nil, err
	}
	if err := ValidateLibraries(table.Library); err != nil {
		return nil, err
	}
	return table.Library, nil
}

// NewValidator returns a validator that also knows `krait_word`: a single
// word that `import x from <word>` can name.
func NewValidator() *validator.Validate {
	validate := validator.New()
	err := validate.RegisterValidation("krait_word", func(fl validator.FieldLevel) bool {
		word := fl.Field().String()
		return lexer.IsValidIdent(word) || lexer.IsKeyword(word)
	})
	if err != nil {
		panic(err)
	}
	return validate
}

// ValidateLibraries checks every entry for its required fields.
func ValidateLibraries(libs []Library) error {
	validate := NewValidator()
	for _, lib := range libs {
		if err := validate.Struct(lib); err != nil {
			return fmt.Errorf("library %q: %w", lib.Key, err)
		}
	}
	return nil
}

// New builds a registry from libs; later entries replace earlier ones with
// the same key.
func New(libs ...Library) *Registry {
	r := &Registry{libs: make(map[string]Library, len(libs))}
	for _, lib := range libs {
		r.libs[lib.Key] = lib
	}
	return r
}

// With returns a copy of r extended with extra. r itself is unchanged.
func (r *Registry) With(extra ...Library) *Registry {
	out := &Registry{libs: maps.Clone(r.libs)}
	for _, lib := range extra {
		out.libs[lib.Key] = lib
	}
	return out
}

func (r *Registry) Get(key string) (Library, bool) {
	lib, ok := r.libs[key]
	return lib, ok
}

// Keys returns every capability key, sorted.
func (r *Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.libs))
}

// Lookup returns the import lines for names in first-seen order. Unknown
// names are skipped and no line appears twice.
func (r *Registry) Lookup(names []string) []string {
	return r.collect(names, func(lib Library) []string { return lib.Imports })
}

// Features returns the distinct features of names in first-seen order.
func (r *Registry) Features(names []string) []string {
	return r.collect(names, func(lib Library) []string { return lib.Features })
}

// Dependencies returns the Cargo.toml dependency lines for names.
func (r *Registry) Dependencies(names []string) []string {
	return r.collect(names, func(lib Library) []string { return []string{lib.Dependency} })
}

func (r *Registry) collect(names []string, pick func(Library) []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, name := range names {
		lib, ok := r.libs[name]
		if !ok {
			continue
		}
		for _, s := range pick(lib) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
