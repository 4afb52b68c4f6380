package config

// DefaultFile is the settings file read from the working directory when no
// explicit file is named.
const DefaultFile = "seqdecode.hcl"

// Settings is a partial configuration. A nil field means "not set at this
// layer", so layers can be merged without losing explicit false or empty
// values.
type Settings struct {
	RecordingPath *string `hcl:"recording_path,optional"`
	ConvertEscape *bool   `hcl:"convert_escape,optional"`
	SplitCommands *bool   `hcl:"split_commands,optional"`
	Highlight     *string `hcl:"highlight,optional"`
	OutputFormat  *string `hcl:"output_format,optional"`
	LogLevel      *string `hcl:"log_level,optional"`
	LogFormat     *string `hcl:"log_format,optional"`
}

// Merge returns a copy of s with every field that is set in over replacing
// the corresponding field of s.
func (s Settings) Merge(over *Settings) Settings {
	if over == nil {
		return s
	}
	if over.RecordingPath != nil {
		s.RecordingPath = over.RecordingPath
	}
	if over.ConvertEscape != nil {
		s.ConvertEscape = over.ConvertEscape
	}
	if over.SplitCommands != nil {
		s.SplitCommands = over.SplitCommands
	}
	if over.Highlight != nil {
		s.Highlight = over.Highlight
	}
	if over.OutputFormat != nil {
		s.OutputFormat = over.OutputFormat
	}
	if over.LogLevel != nil {
		s.LogLevel = over.LogLevel
	}
	if over.LogFormat != nil {
		s.LogFormat = over.LogFormat
	}
	return s
}

// StringOr returns *p, or def when p is nil.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// BoolOr returns *p, or def when p is nil.
func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
