package templatemethod

import (
	"fmt"
	"io"
)

// Tactics is the required step set: the moves every race must supply.
type Tactics interface {
	// BuildStructures runs the race's construction phase.
	BuildStructures()
	// BuildUnits runs the race's recruitment phase.
	BuildUnits()
	// SendScouts dispatches scouts to a position.
	SendScouts(position string)
	// SendWarriors dispatches warriors to a position.
	SendWarriors(position string)
}

// ResourceCollector optionally replaces the skeleton's default resource
// phase.
type ResourceCollector interface {
	CollectResources()
}

// EnemySpotter optionally feeds the attack decision. An empty string means
// no enemy in sight.
type EnemySpotter interface {
	ClosestEnemy() string
}

// Game owns the turn skeleton: the phase order is fixed here and nowhere
// else.
type Game struct {
	w io.Writer
}

// NewGame returns a game whose default steps report to w.
func NewGame(w io.Writer) *Game { return &Game{w: w} }

// Turn runs one full turn for the given race: resources, structures,
// units, attack. Races change steps, never the order.
func (g *Game) Turn(t Tactics) {
	g.collectResources(t)
	t.BuildStructures()
	t.BuildUnits()
	g.attack(t)
}

func (g *Game) collectResources(t Tactics) {
	if c, ok := t.(ResourceCollector); ok {
		c.CollectResources()
		return
	}
	fmt.Fprintln(g.w, "Collecting resources from built structures...")
}

func (g *Game) attack(t Tactics) {
	enemy := ""
	if s, ok := t.(EnemySpotter); ok {
		enemy = s.ClosestEnemy()
	}
	if enemy == "" {
		t.SendScouts("map center")
	} else {
		t.SendWarriors(enemy)
	}
}

// OrcsAI supplies the required steps only: resource collection and enemy
// scanning fall back to the skeleton's defaults.
type OrcsAI struct {
	w io.Writer
}

// NewOrcsAI returns the orc step set reporting to w.
func NewOrcsAI(w io.Writer) *OrcsAI { return &OrcsAI{w: w} }

// BuildStructures raises the orc economy.
func (o *OrcsAI) BuildStructures() {
	fmt.Fprintln(o.w, "Orcs are building farms, barracks, and stronghold...")
}

// BuildUnits trains orc units.
func (o *OrcsAI) BuildUnits() {
	fmt.Fprintln(o.w, "Orcs are building units...")
}

// SendScouts dispatches orc scouts.
func (o *OrcsAI) SendScouts(position string) {
	fmt.Fprintln(o.w, "Orc scouts are heading to position: "+position)
}

// SendWarriors dispatches orc warriors.
func (o *OrcsAI) SendWarriors(position string) {
	fmt.Fprintln(o.w, "Orc warriors are heading to position: "+position)
}

// MonstersAI overrides the resource phase as well: monsters forage nothing
// and build nothing, they only swarm.
type MonstersAI struct {
	w io.Writer
}

// NewMonstersAI returns the monster step set reporting to w.
func NewMonstersAI(w io.Writer) *MonstersAI { return &MonstersAI{w: w} }

// CollectResources replaces the default phase: monsters skip it.
func (m *MonstersAI) CollectResources() {
	fmt.Fprintln(m.w, "Monsters don't collect resources.")
}

// BuildStructures reports that monsters build nothing.
func (m *MonstersAI) BuildStructures() {
	fmt.Fprintln(m.w, "Monsters don't build structures.")
}

// BuildUnits reports that monsters train nothing.
func (m *MonstersAI) BuildUnits() {
	fmt.Fprintln(m.w, "Monsters don't build units.")
}

// SendScouts dispatches monster scouts.
func (m *MonstersAI) SendScouts(position string) {
	fmt.Fprintln(m.w, "Monster scouts are heading to position: "+position)
}

// SendWarriors dispatches monster warriors.
func (m *MonstersAI) SendWarriors(position string) {
	fmt.Fprintln(m.w, "Monster warriors are heading to position: "+position)
}
