package events

import "github.com/Eatkin/reddit-cli/internal/logging"

type StackTracer struct{}

var Stack = StackTracer{}

func (StackTracer) Push(screenID string, depth int) {
	logging.Trace("stack.push", map[string]interface{}{"screen": screenID, "depth": depth})
}

func (StackTracer) Pop(screenID string, depth int) {
	logging.Trace("stack.pop", map[string]interface{}{"screen": screenID, "depth": depth})
}

func (StackTracer) Empty() {
	logging.Trace("stack.empty", nil)
}
