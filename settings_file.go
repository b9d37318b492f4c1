package xmlformat

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// SettingsFormat is a serialization format for Settings.
type SettingsFormat string

// Enumerates the supported settings formats.
const (
	SettingsYAML SettingsFormat = "yaml"
	SettingsTOML SettingsFormat = "toml"
	SettingsJSON SettingsFormat = "json"
)

type settingsCodec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

var settingsCodecs = map[SettingsFormat]settingsCodec{
	SettingsYAML: yamlCodec{},
	SettingsTOML: tomlCodec{},
	SettingsJSON: jsonCodec{},
}

type yamlCodec struct{}

func (yamlCodec) Encode(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Decode(data []byte, v interface{}) error {
	return yaml.Unmarshal(data, v)
}

type tomlCodec struct{}

func (tomlCodec) Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Decode(data []byte, v interface{}) error {
	return toml.Unmarshal(data, v)
}

type jsonCodec struct{}

func (jsonCodec) Encode(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (jsonCodec) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func getSettingsCodec(format SettingsFormat) (settingsCodec, error) {
	c, ok := settingsCodecs[format]
	if !ok {
		return nil, fmt.Errorf("unsupported settings format %q", format)
	}
	return c, nil
}

// SettingsFormatFromPath returns the settings format matching the extension
// of path.
func SettingsFormatFromPath(path string) (SettingsFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return SettingsYAML, nil
	case ".toml":
		return SettingsTOML, nil
	case ".json":
		return SettingsJSON, nil
	default:
		return "", fmt.Errorf("unsupported settings file extension %q", ext)
	}
}

// LoadSettings reads settings in the given format. Fields missing from data
// keep their DefaultSettings value.
func LoadSettings(data []byte, format SettingsFormat) (Settings, error) {
	c, err := getSettingsCodec(format)
	if err != nil {
		return Settings{}, err
	}

	s := DefaultSettings()
	if err := c.Decode(data, &s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode %s settings, %w", format, err)
	}
	return s, nil
}

// LoadSettingsFile reads settings from a file, choosing the format from the
// file extension.
func LoadSettingsFile(path string) (Settings, error) {
	format, err := SettingsFormatFromPath(path)
	if err != nil {
		return Settings{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("unable to read settings file, %w", err)
	}

	s, err := LoadSettings(data, format)
	if err != nil {
		return Settings{}, fmt.Errorf("unable to load settings file %s, %w", path, err)
	}
	return s, nil
}

// Export renders s in the given format. Settings imported from a document
// can be exported and loaded again to encode documents of the same shape.
func (s Settings) Export(format SettingsFormat) ([]byte, error) {
	c, err := getSettingsCodec(format)
	if err != nil {
		return nil, err
	}

	b, err := c.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("unable to encode %s settings, %w", format, err)
	}
	return b, nil
}
