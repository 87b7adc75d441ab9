// Package contact classifies collisions between tagged colliders.
package contact

// Tag is the role attached to a collider when it is created. The zero value
// marks a collider that takes no part in gameplay.
type Tag uint8

const (
	None Tag = iota
	Player
	Floor
	Spike
)

func (t Tag) String() string {
	switch t {
	case Player:
		return "player"
	case Floor:
		return "floor"
	case Spike:
		return "spike"
	default:
		return "none"
	}
}

// ParseTag maps a level-file name to a tag. Unknown names yield None.
func ParseTag(name string) Tag {
	switch name {
	case "player":
		return Player
	case "floor":
		return Floor
	case "spike":
		return Spike
	default:
		return None
	}
}

// Phase tells whether the two colliders started or stopped touching.
type Phase uint8

const (
	Begin Phase = iota
	End
)

// Event is one begin/end notification. The order of A and B is whatever
// the physics engine reported and carries no meaning.
type Event struct {
	Phase Phase
	A, B  Tag
}

// Pair is an unordered pair of tags to look for.
type Pair struct {
	A, B Tag
}

var (
	PlayerFloor = Pair{A: Player, B: Floor}
	PlayerSpike = Pair{A: Player, B: Spike}
)

// Matches reports whether ev involves exactly the tags of want, in either order.
// Events touching an untagged collider never match.
func Matches(ev Event, want Pair) bool {
	if ev.A == None || ev.B == None {
		return false
	}
	return (ev.A == want.A && ev.B == want.B) || (ev.A == want.B && ev.B == want.A)
}
