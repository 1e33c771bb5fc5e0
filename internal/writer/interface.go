package writer

// Writer persists transcribed text under a name derived from the
// source audio file.
type Writer interface {
	Write(sourceName, text string) (string, error)
}
