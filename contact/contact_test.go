package contact

import "testing"

var allTags = []Tag{None, Player, Floor, Spike}

func TestMatchesIsSymmetric(t *testing.T) {
	for _, a := range allTags {
		for _, b := range allTags {
			ev := Event{A: a, B: b}
			for _, wa := range allTags {
				for _, wb := range allTags {
					got := Matches(ev, Pair{A: wa, B: wb})
					swapped := Matches(ev, Pair{A: wb, B: wa})
					if got != swapped {
						t.Fatalf("event %v/%v: want (%v,%v)=%v but (%v,%v)=%v", a, b, wa, wb, got, wb, wa, swapped)
					}
					flipped := Matches(Event{A: b, B: a}, Pair{A: wa, B: wb})
					if got != flipped {
						t.Fatalf("event order changed result for %v/%v", a, b)
					}
				}
			}
		}
	}
}

func TestMatchesIgnoresUntagged(t *testing.T) {
	for _, other := range allTags {
		for _, want := range []Pair{PlayerFloor, PlayerSpike, {A: None, B: None}, {A: None, B: other}} {
			if Matches(Event{A: None, B: other}, want) {
				t.Fatalf("untagged event (none,%v) matched %v", other, want)
			}
			if Matches(Event{A: other, B: None}, want) {
				t.Fatalf("untagged event (%v,none) matched %v", other, want)
			}
		}
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		want Pair
		ok   bool
	}{
		{"player_floor", Event{A: Player, B: Floor}, PlayerFloor, true},
		{"floor_player", Event{A: Floor, B: Player}, PlayerFloor, true},
		{"spike_player", Event{Phase: End, A: Spike, B: Player}, PlayerSpike, true},
		{"player_spike_not_floor", Event{A: Player, B: Spike}, PlayerFloor, false},
		{"floor_spike", Event{A: Floor, B: Spike}, PlayerSpike, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Matches(c.ev, c.want); got != c.ok {
				t.Fatalf("Matches(%+v, %+v) = %v, want %v", c.ev, c.want, got, c.ok)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	for _, tag := range []Tag{Player, Floor, Spike} {
		if got := ParseTag(tag.String()); got != tag {
			t.Fatalf("ParseTag(%q) = %v", tag.String(), got)
		}
	}
	if ParseTag("lava") != None {
		t.Fatalf("unknown tag should parse as none")
	}
}
