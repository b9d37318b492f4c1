package xmlformat

import (
	"sync"

	"github.com/markupdoc/xmlformat/logging"
)

const (
	// MediaType is the media type of documents handled by this package.
	MediaType = "application/xml"

	// Extension is the file extension of documents handled by this package.
	Extension = "xml"
)

// Format pairs encoding and decoding around one set of settings that lives
// as long as the Format. Settings returned by a decode are adopted by the
// Format, so with ImportSettingsFromXML a decoded request configures the
// encoding of later responses.
//
// Format serializes access to its settings; it is safe for concurrent use,
// though concurrent decodes that import settings race on which result is
// adopted last.
type Format struct {
	mu       sync.RWMutex
	settings Settings
	logger   logging.Logger
}

// NewFormat returns a Format using settings. A nil logger disables logging.
func NewFormat(settings Settings, logger logging.Logger) *Format {
	if logger == nil {
		logger = logging.Noop{}
	}
	return &Format{settings: settings.Clone(), logger: logger}
}

// MediaType returns the media type of the format.
func (f *Format) MediaType() string { return MediaType }

// Extension returns the file extension of the format.
func (f *Format) Extension() string { return Extension }

// Settings returns a copy of the current settings.
func (f *Format) Settings() Settings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.settings.Clone()
}

// SetSettings replaces the current settings.
func (f *Format) SetSettings(s Settings) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = s.Clone()
}

// Encode writes v as XML using the current settings.
func (f *Format) Encode(v interface{}, pretty bool) (string, error) {
	s := f.Settings()
	return NewEncoder(func(o *EncoderOptions) {
		o.Settings = s
		o.Logger = f.logger
	}).Encode(v, pretty)
}

// Decode reads an XML document using the current settings, then adopts the
// settings returned by the decode.
func (f *Format) Decode(data []byte) (*DecodeResult, error) {
	s := f.Settings()
	result, err := NewDecoder(func(o *DecoderOptions) {
		o.Settings = s
		o.Logger = f.logger
	}).Decode(data)
	if err != nil {
		return nil, err
	}

	f.SetSettings(result.Settings)
	return result, nil
}
