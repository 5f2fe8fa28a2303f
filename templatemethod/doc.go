// Package templatemethod demonstrates the Template Method pattern: a fixed
// algorithm skeleton whose individual steps are supplied, and selectively
// overridden, by the caller.
//
// What
//
//   - Game owns the skeleton. Turn always runs the same four phases:
//     collect resources, build structures, build units, attack.
//   - Tactics is the required step set every race implements
//     (BuildStructures, BuildUnits, SendScouts, SendWarriors).
//   - Two optional capabilities refine default steps: ResourceCollector
//     replaces the stock resource phase, EnemySpotter feeds the attack
//     decision. A race that implements neither gets the defaults.
//   - OrcsAI keeps the default resource phase; MonstersAI overrides it.
//
// Why
//
//	Every race's turn is the same algorithm with three-and-a-half different
//	steps. Copying the skeleton per race duplicates the phase order and
//	lets the copies drift. Keeping the skeleton in Game means the order is
//	stated once; races plug in only the steps that actually differ.
//
// The classic rendition overrides protected methods on an abstract base.
// With no inheritance here, the skeleton takes the step set as an
// interface and discovers optional refinements by capability assertion,
// which keeps "must implement" and "may override" visibly separate.
//
// Attack decision
//
//	With no enemy in sight (no EnemySpotter, or one reporting ""), scouts
//	go to the map center; otherwise warriors head for the reported enemy.
//
// Usage
//
//	game := templatemethod.NewGame(os.Stdout)
//	game.Turn(templatemethod.NewOrcsAI(os.Stdout))
package templatemethod
