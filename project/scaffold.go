package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/krait-lang/krait/frontend"
	"github.com/krait-lang/krait/std"
)

// capabilities a new project's Cargo.toml depends on
var scaffoldLibraries = []string{"rest", "json", "serde", "tokio"}

const mainKr = `public func main()
    print("Hello from Krait!")
end
`

// Scaffold creates a new project named after dir:
//
//	dir/krait.toml
//	dir/Cargo.toml
//	dir/krait_src/main.kr
//	dir/rust_code/
//	dir/.gitignore
//	dir/README.md
//
// It refuses to touch an existing krait.toml.
func Scaffold(dir string, reg *std.Registry) error {
	name := filepath.Base(filepath.Clean(dir))
	if _, err := os.Stat(filepath.Join(dir, ConfigFile)); err == nil {
		return fmt.Errorf("%s already contains a %s", dir, ConfigFile)
	}

	for _, sub := range []string{frontend.DefaultSrcDir, frontend.DefaultOutDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return err
		}
	}

	files := []struct{ path, content string }{
		{ConfigFile, kraitToml(name)},
		{CargoFile, cargoToml(name, reg)},
		{filepath.Join(frontend.DefaultSrcDir, "main.kr"), mainKr},
		{".gitignore", "/target\n/" + frontend.DefaultOutDir + "\nCargo.lock\n"},
		{"README.md", readme(name)},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.path), []byte(f.content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func kraitToml(name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name = %q\n", name)
	sb.WriteString("version = \"0.1.0\"\n")
	fmt.Fprintf(&sb, "src = %q\n", frontend.DefaultSrcDir)
	fmt.Fprintf(&sb, "out = %q\n", frontend.DefaultOutDir)
	sb.WriteString("\n[server]\n")
	fmt.Fprintf(&sb, "host = %q\n", frontend.DefaultHost)
	fmt.Fprintf(&sb, "port = %d\n", frontend.DefaultPort)
	return sb.String()
}

// crateName turns a directory name into a valid Cargo package name.
func crateName(name string) string {
	var sb strings.Builder
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
			sb.WriteRune(c)
		default:
			sb.WriteByte('-')
		}
	}
	if sb.Len() == 0 {
		return "krait-app"
	}
	return sb.String()
}

func cargoToml(name string, reg *std.Registry) string {
	crate := crateName(name)
	var sb strings.Builder
	sb.WriteString("[package]\n")
	fmt.Fprintf(&sb, "name = %q\n", crate)
	sb.WriteString("version = \"0.1.0\"\n")
	sb.WriteString("edition = \"2021\"\n\n")
	sb.WriteString("[[bin]]\n")
	fmt.Fprintf(&sb, "name = %q\n", crate)
	fmt.Fprintf(&sb, "path = %q\n\n", frontend.DefaultOutDir+"/main.rs")
	sb.WriteString("[dependencies]\n")
	for _, dep := range reg.Dependencies(scaffoldLibraries) {
		sb.WriteString(dep)
		sb.WriteByte('\n')
	}
	sb.WriteString("actix-rt = \"2\"\n")
	return sb.String()
}

func readme(name string) string {
	return "# " + name + `

Krait sources live in ` + "`" + frontend.DefaultSrcDir + "`" + `, generated Rust in ` + "`" + frontend.DefaultOutDir + "`" + `.

    krait build          # translate and run cargo build --release
    krait watch          # retranslate on every save
`
}
