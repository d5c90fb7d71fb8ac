package hal

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultHz     = 60
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "cubegrid"
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = defaultHz
	}
	return c
}

// ScriptEvent is an input event injected by the headless runner before the
// step of the given tick (1-based).
type ScriptEvent struct {
	Tick  uint64
	Event Event
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int
	Script  []ScriptEvent
}

func (c HeadlessConfig) withDefaults() HeadlessConfig {
	if c.Hz <= 0 {
		c.Hz = defaultHz
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}
