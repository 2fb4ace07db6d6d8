package frontend

import (
	"net"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"

	"github.com/krait-lang/krait/std"
)

const (
	DefaultSrcDir = "krait_src"
	DefaultOutDir = "rust_code"
	DefaultHost   = "127.0.0.1"
	DefaultPort   = 8080
)

// ServerConfig is where the generated actix server binds.
type ServerConfig struct {
	Host string `toml:"host" validate:"required,hostname|ip"`
	Port int    `toml:"port" validate:"min=1,max=65535"`
}

// KraitToml is the krait.toml project file.
type KraitToml struct {
	Name      string        `toml:"name" validate:"required"`
	Version   string        `toml:"version" validate:"required"`
	Src       string        `toml:"src"`
	Out       string        `toml:"out"`
	Server    ServerConfig  `toml:"server"`
	Libraries []std.Library `toml:"libraries" validate:"dive"`
}

func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (s ServerConfig) URL() string {
	return "http://" + s.Address()
}

// DefaultServer returns the server settings with KRAIT_HOST and KRAIT_PORT
// applied.
func DefaultServer() ServerConfig {
	return ServerConfig{Host: DefaultHost, Port: DefaultPort}.withEnv()
}

// withEnv overrides s from KRAIT_HOST and KRAIT_PORT. The env cache is
// reloaded first so long-running commands see changes.
func (s ServerConfig) withEnv() ServerConfig {
	env.Load()
	s.Host = env.Str("KRAIT_HOST", s.Host)
	s.Port = env.Int("KRAIT_PORT", s.Port)
	return s
}

func HandleKraitToml(tomlContent string) (KraitToml, error) {
	kt := KraitToml{
		Src: DefaultSrcDir,
		Out: DefaultOutDir,
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
	_, err := toml.Decode(tomlContent, &kt)
	if err != nil {
		return kt, err
	}
	kt.Server = kt.Server.withEnv()

	validate := std.NewValidator()
	if err := validate.Struct(kt); err != nil {
		return kt, err
	}
	return kt, nil
}

// Registry returns the default registry extended with the project's own
// libraries.
func (kt KraitToml) Registry() *std.Registry {
	return std.Default().With(kt.Libraries...)
}
