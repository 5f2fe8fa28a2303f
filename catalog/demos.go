// SPDX-License-Identifier: MIT
// Package: designpatterns/catalog
//
// demos.go - the authoritative demo list. Every pattern in the module is
// registered here, literally and in one place; pattern packages stay
// ignorant of the catalog.

package catalog

import (
	"github.com/MSREDDY199/Design-Patterns/abstractfactory"
	"github.com/MSREDDY199/Design-Patterns/adapter"
	"github.com/MSREDDY199/Design-Patterns/builder"
	"github.com/MSREDDY199/Design-Patterns/chain"
	"github.com/MSREDDY199/Design-Patterns/command"
	"github.com/MSREDDY199/Design-Patterns/composite"
	"github.com/MSREDDY199/Design-Patterns/decorator"
	"github.com/MSREDDY199/Design-Patterns/facade"
	"github.com/MSREDDY199/Design-Patterns/factorymethod"
	"github.com/MSREDDY199/Design-Patterns/iterator"
	"github.com/MSREDDY199/Design-Patterns/observer"
	"github.com/MSREDDY199/Design-Patterns/prototype"
	"github.com/MSREDDY199/Design-Patterns/singleton"
	"github.com/MSREDDY199/Design-Patterns/state"
	"github.com/MSREDDY199/Design-Patterns/strategy"
	"github.com/MSREDDY199/Design-Patterns/templatemethod"
)

func init() {
	for _, d := range []Demo{
		{
			Name:     "abstract-factory",
			Category: Creational,
			Brief:    "order whole product families by style, never a concrete type",
			Doc:      "abstractfactory",
			Run:      abstractfactory.Demo,
		},
		{
			Name:     "factory-method",
			Category: Creational,
			Brief:    "registered constructors decide which transport gets built",
			Doc:      "factorymethod",
			Run:      factorymethod.Demo,
		},
		{
			Name:     "builder",
			Category: Creational,
			Brief:    "assemble immutable cars step by step, recipes in a director",
			Doc:      "builder",
			Run:      builder.Demo,
		},
		{
			Name:     "singleton",
			Category: Creational,
			Brief:    "one lazily built instance shared by every caller",
			Doc:      "singleton",
			Run:      singleton.Demo,
		},
		{
			Name:     "prototype",
			Category: Creational,
			Brief:    "shapes that clone themselves through their interface",
			Doc:      "prototype",
			Run:      prototype.Demo,
		},
		{
			Name:     "adapter",
			Category: Structural,
			Brief:    "square pegs in round holes via a radius-translating wrapper",
			Doc:      "adapter",
			Run:      adapter.Demo,
		},
		{
			Name:     "decorator",
			Category: Structural,
			Brief:    "coffee add-ons layered at runtime, one wrapper per add-on",
			Doc:      "decorator",
			Run:      decorator.Demo,
		},
		{
			Name:     "composite",
			Category: Structural,
			Brief:    "move one shape or a nested group through the same call",
			Doc:      "composite",
			Run:      composite.Demo,
		},
		{
			Name:     "facade",
			Category: Structural,
			Brief:    "one WatchMovie call in front of the whole device zoo",
			Doc:      "facade",
			Run:      facade.Demo,
		},
		{
			Name:     "chain-of-responsibility",
			Category: Behavioral,
			Brief:    "help requests climb the UI tree until a component answers",
			Doc:      "chain",
			Run:      chain.Demo,
		},
		{
			Name:     "command",
			Category: Behavioral,
			Brief:    "actions as objects, with undo and redo stacks in the remote",
			Doc:      "command",
			Run:      command.Demo,
		},
		{
			Name:     "state",
			Category: Behavioral,
			Brief:    "a media player whose buttons mean what its mode says",
			Doc:      "state",
			Run:      state.Demo,
		},
		{
			Name:     "iterator",
			Category: Behavioral,
			Brief:    "one loop over a slice-backed shelf and a set-backed rack",
			Doc:      "iterator",
			Run:      iterator.Demo,
		},
		{
			Name:     "template-method",
			Category: Behavioral,
			Brief:    "a fixed game-turn skeleton, races supply the steps",
			Doc:      "templatemethod",
			Run:      templatemethod.Demo,
		},
		{
			Name:     "observer",
			Category: Behavioral,
			Brief:    "an editor publishing open/save events to subscribed listeners",
			Doc:      "observer",
			Run:      observer.Demo,
		},
		{
			Name:     "strategy",
			Category: Behavioral,
			Brief:    "swap the cart's payment algorithm without touching checkout",
			Doc:      "strategy",
			Run:      strategy.Demo,
		},
	} {
		MustRegister(d)
	}
}
