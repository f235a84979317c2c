package config

// ColorScheme holds the colors used by the TUI and CLI output
type ColorScheme struct {
	Accent   string `yaml:"accent"`
	Title    string `yaml:"title"`
	Normal   string `yaml:"normal"`
	Subtle   string `yaml:"subtle"`
	Selected string `yaml:"selected"`
	ErrorFg  string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Accent:   "#7D56F4",
		Title:    "#FFFFFF",
		Normal:   "#DDDDDD",
		Subtle:   "#777777",
		Selected: "#F25D94",
		ErrorFg:  "#EF4444",
	}
}

func (c *ColorScheme) applyDefaults() {
	d := DefaultColorScheme()
	if c.Accent == "" {
		c.Accent = d.Accent
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Normal == "" {
		c.Normal = d.Normal
	}
	if c.Subtle == "" {
		c.Subtle = d.Subtle
	}
	if c.Selected == "" {
		c.Selected = d.Selected
	}
	if c.ErrorFg == "" {
		c.ErrorFg = d.ErrorFg
	}
}
