package game

import "fmt"

// SiteKind distinguishes the three states of a vertex.
type SiteKind uint8

const (
	SiteVacant SiteKind = iota
	SiteCampus
	SiteGO8
)

// Site is the occupant of a vertex: vacant, a campus or a GO8, with owner.
type Site struct {
	Kind  SiteKind
	Owner Player
}

// Vacant returns an empty site.
func Vacant() Site { return Site{} }

// Campus returns a standard campus owned by p.
func Campus(p Player) Site { return Site{Kind: SiteCampus, Owner: p} }

// GO8 returns an upgraded campus owned by p.
func GO8(p Player) Site { return Site{Kind: SiteGO8, Owner: p} }

// IsVacant reports whether nobody occupies the site.
func (s Site) IsVacant() bool { return s.Kind == SiteVacant }

// IsCampus reports whether the site holds a standard campus.
func (s Site) IsCampus() bool { return s.Kind == SiteCampus }

// IsGO8 reports whether the site holds a GO8 campus.
func (s Site) IsGO8() bool { return s.Kind == SiteGO8 }

// OwnedBy reports whether p holds the site at either level.
func (s Site) OwnedBy(p Player) bool {
	return s.Kind != SiteVacant && s.Owner == p
}

// Code returns the numeric tag used by exports: 0 for vacant, the player
// number for a campus, the player number plus three for a GO8.
func (s Site) Code() int {
	switch s.Kind {
	case SiteCampus:
		return int(s.Owner)
	case SiteGO8:
		return int(s.Owner) + NumPlayers
	default:
		return 0
	}
}

func (s Site) String() string {
	switch s.Kind {
	case SiteCampus:
		return fmt.Sprintf("campus(%s)", s.Owner)
	case SiteGO8:
		return fmt.Sprintf("go8(%s)", s.Owner)
	default:
		return "vacant"
	}
}
