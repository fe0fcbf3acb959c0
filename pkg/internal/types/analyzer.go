package types

// MovementAnalyzer turns a raw 3-axis signal into an AnalysisResult for a
// given exercise. Degenerate signals (no detected motion) yield the
// zero-valued result, not an error.
type MovementAnalyzer interface {
	Analyze(sig Signal, exercise string) (AnalysisResult, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, format string, args ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
