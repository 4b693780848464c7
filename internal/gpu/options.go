package gpu

// HostOptions sizes the window that hosts the pipeline.
type HostOptions struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	TargetFPS int
	MaxFrames int
	Style     Style
}
