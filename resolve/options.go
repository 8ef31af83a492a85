package resolve

import (
	"strings"

	"github.com/npillmayer/design2html/style"
	"github.com/npillmayer/schuko"
)

// Options parameterize the style resolver.
type Options struct {
	// DefaultFontFamily is the design tool's default font; a font family
	// equal to it is not emitted.
	DefaultFontFamily string
	// GapCeiling is an exclusive upper bound for item spacing to be
	// emitted as `gap`. Larger spacings stem from malformed layouts.
	GapCeiling float64
	// VectorFiller is the background color of vector stand-ins.
	VectorFiller style.Property
}

// Configuration keys for options.
const (
	KeyDefaultFontFamily = "style.defaultfontfamily"
	KeyGapCeiling        = "style.gapceiling"
	KeyVectorFiller      = "style.vectorfiller"
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		DefaultFontFamily: "SF Pro Text",
		GapCeiling:        50,
		VectorFiller:      "#d9d9d9",
	}
}

// OptionsFromConfig reads options from a configuration. Keys which are not
// set keep their default value. conf may be nil.
func OptionsFromConfig(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet(KeyDefaultFontFamily) {
		opts.DefaultFontFamily = strings.TrimSpace(conf.GetString(KeyDefaultFontFamily))
	}
	if conf.IsSet(KeyGapCeiling) {
		if c := conf.GetInt(KeyGapCeiling); c > 0 {
			opts.GapCeiling = float64(c)
		} else {
			tracer().Errorf("ignoring illegal gap ceiling %d", c)
		}
	}
	if conf.IsSet(KeyVectorFiller) {
		if f := conf.GetString(KeyVectorFiller); f != "" {
			opts.VectorFiller = style.Property(f)
		}
	}
	return opts
}
