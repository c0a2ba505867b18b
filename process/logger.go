package process

// Logger is the diagnostics sink shared by the engine and the finders.
// *logger.Logger from gologger satisfies it.
type Logger interface {
	Debugln(v ...interface{})
	Infoln(v ...interface{})
	Warn(v ...interface{})
}

type discard struct{}

func (discard) Debugln(...interface{}) {}
func (discard) Infoln(...interface{})  {}
func (discard) Warn(...interface{})    {}

// Discard drops everything
var Discard Logger = discard{}
