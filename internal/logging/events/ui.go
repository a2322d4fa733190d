package events

import "github.com/Eatkin/reddit-cli/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Select(screenID, itemID, label string) {
	logging.Trace("ui.select", map[string]interface{}{
		"screen": screenID,
		"item":   itemID,
		"label":  label,
	})
}

func (UITracer) Cursor(screenID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"screen": screenID, "cursor": cursor})
}

func (UITracer) Validation(screenID, input string, err error) {
	logging.Trace("ui.validation", map[string]interface{}{"screen": screenID, "input": input, "error": err.Error()})
}

func (CommandTracer) Queue(id uint64, owner, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "owner": owner, "label": label})
}

func (CommandTracer) Result(id uint64, owner, label string, err error) {
	payload := map[string]interface{}{"id": id, "owner": owner, "label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (CommandTracer) Drop(id uint64, owner, reason string) {
	logging.Trace("command.drop", map[string]interface{}{"id": id, "owner": owner, "reason": reason})
}
