package events

import "github.com/Eatkin/reddit-cli/internal/logging"

type AppTracer struct{}

type ConfigTracer struct{}

var (
	App    = AppTracer{}
	Config = ConfigTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (ConfigTracer) Diagnostic(path string, index int, message string) {
	logging.Trace("config.diagnostic", map[string]interface{}{"path": path, "index": index, "message": message})
}

func (ConfigTracer) Theme(requested, resolved string) {
	logging.Trace("config.theme", map[string]interface{}{"requested": requested, "resolved": resolved})
}
