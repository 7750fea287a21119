// Package game implements the Knowledge Island rules: board state, the
// legality engine, action application and dice production. It contains pure
// logic; callers own randomness, turn driving and presentation.
package game

import (
	"fmt"
	"strings"
)

// Player identifies a university seat.
type Player int

const (
	NoOne Player = iota
	UniA
	UniB
	UniC
)

// NumPlayers is the number of seats in a game.
const NumPlayers = 3

// Players lists the seats in turn order.
var Players = [NumPlayers]Player{UniA, UniB, UniC}

// Valid reports whether p is a real seat.
func (p Player) Valid() bool {
	return p >= UniA && p <= UniC
}

// Next returns the seat that acts after p. NoOne is followed by UniA.
func (p Player) Next() Player {
	if p >= UniC || p < UniA {
		return UniA
	}
	return p + 1
}

// String returns the display name for the seat.
func (p Player) String() string {
	switch p {
	case UniA:
		return "A"
	case UniB:
		return "B"
	case UniC:
		return "C"
	default:
		return "none"
	}
}

// Discipline is a student (resource) category.
type Discipline int

const (
	THD Discipline = iota
	BPS
	BQN
	MJ
	MTV
	MMONEY
)

// NumDisciplines is the number of student categories.
const NumDisciplines = 6

var disciplineNames = [NumDisciplines]string{"THD", "BPS", "BQN", "MJ", "MTV", "MMONEY"}

// Valid reports whether d is a known category.
func (d Discipline) Valid() bool {
	return d >= THD && d <= MMONEY
}

// String returns the short upper-case name of the category.
func (d Discipline) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
	return disciplineNames[d]
}

// ParseDiscipline converts a name such as "mj" or "MMONEY" to a Discipline.
func ParseDiscipline(s string) (Discipline, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range disciplineNames {
		if n == name {
			return Discipline(i), nil
		}
	}
	return THD, fmt.Errorf("game: unknown discipline %q", s)
}

// ActionKind enumerates the moves a player may attempt.
type ActionKind int

const (
	Pass ActionKind = iota
	BuildCampus
	BuildGO8
	ObtainARC
	StartSpinoff
	ObtainPublication
	ObtainPatent
	RetrainStudents
)

var actionNames = map[ActionKind]string{
	Pass:              "pass",
	BuildCampus:       "build_campus",
	BuildGO8:          "build_go8",
	ObtainARC:         "obtain_arc",
	StartSpinoff:      "start_spinoff",
	ObtainPublication: "obtain_publication",
	ObtainPatent:      "obtain_patent",
	RetrainStudents:   "retrain_students",
}

// String returns the snake_case name of the action kind.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a single move. Destination is used by the build actions,
// From and To by RetrainStudents.
type Action struct {
	Kind        ActionKind
	Destination string
	From        Discipline
	To          Discipline
}

// String returns a compact description of the action.
func (a Action) String() string {
	switch a.Kind {
	case BuildCampus, BuildGO8, ObtainARC:
		return fmt.Sprintf("%s %q", a.Kind, a.Destination)
	case RetrainStudents:
		return fmt.Sprintf("%s %s->%s", a.Kind, a.From, a.To)
	default:
		return a.Kind.String()
	}
}

// PassAction ends the turn.
func PassAction() Action { return Action{Kind: Pass} }

// SpinoffAction starts a spinoff, to be resolved by the caller.
func SpinoffAction() Action { return Action{Kind: StartSpinoff} }

// CampusAction builds a campus at the vertex named by path.
func CampusAction(path string) Action { return Action{Kind: BuildCampus, Destination: path} }

// GO8Action upgrades the campus at the vertex named by path.
func GO8Action(path string) Action { return Action{Kind: BuildGO8, Destination: path} }

// ARCAction obtains the ARC named by path.
func ARCAction(path string) Action { return Action{Kind: ObtainARC, Destination: path} }

// RetrainAction converts from-students into one to-student.
func RetrainAction(from, to Discipline) Action {
	return Action{Kind: RetrainStudents, From: from, To: to}
}
