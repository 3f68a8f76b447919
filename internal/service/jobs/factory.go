package jobs

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byName map[string]actionFunc
}

func newActionFactory(onAccepted, onCancelled actionFunc) *actionFactory {
	return &actionFactory{
		byName: map[string]actionFunc{
			EventJobAccepted:    onAccepted,
			EventOrderCancelled: onCancelled,
			"order.canceled":    onCancelled,
		},
	}
}

func (f *actionFactory) get(name string) (actionFunc, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	fn, ok := f.byName[name]
	return fn, ok
}
