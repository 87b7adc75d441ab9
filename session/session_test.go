package session

import (
	"errors"
	"testing"
)

type fakeScreen struct {
	name    string
	log     *[]string
	showErr error
	updates int
}

func (f *fakeScreen) Show() error {
	*f.log = append(*f.log, "show "+f.name)
	return f.showErr
}

func (f *fakeScreen) Hide() { *f.log = append(*f.log, "hide "+f.name) }

func (f *fakeScreen) Update() error {
	f.updates++
	return nil
}

func newTestController(log *[]string) (*Controller, map[Mode]*fakeScreen) {
	c := NewController()
	screens := map[Mode]*fakeScreen{}
	for _, m := range []Mode{ModeLoading, ModeMenu, ModePlaying, ModeGameOver} {
		s := &fakeScreen{name: m.String(), log: log}
		screens[m] = s
		c.Register(m, s)
	}
	return c, screens
}

func TestControllerAppliesQueuedRequest(t *testing.T) {
	var log []string
	c, screens := newTestController(&log)

	c.Request(ModeMenu)
	if c.Current() != ModeNone {
		t.Fatalf("request must not switch before Apply")
	}
	if err := c.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Current() != ModeMenu || screens[ModeMenu].updates != 1 {
		t.Fatalf("expected menu active and updated once, got %v/%d", c.Current(), screens[ModeMenu].updates)
	}

	c.Request(ModePlaying)
	if err := c.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	want := []string{"show menu", "hide menu", "show playing"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestControllerLatestRequestWins(t *testing.T) {
	var log []string
	c, _ := newTestController(&log)

	c.Request(ModeMenu)
	c.Request(ModeGameOver)
	changed, err := c.Apply()
	if err != nil || !changed {
		t.Fatalf("apply = %v, %v", changed, err)
	}
	if c.Current() != ModeGameOver {
		t.Fatalf("current = %v, want game_over", c.Current())
	}
	if changed, _ := c.Apply(); changed {
		t.Fatalf("second apply without a request must be a no-op")
	}
}

func TestControllerSessionScopedRequests(t *testing.T) {
	cases := []struct {
		name     string
		restart  bool
		wantMode Mode
	}{
		{"same_session", false, ModeGameOver},
		{"stale_session", true, ModePlaying},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			c, _ := newTestController(&log)
			c.Request(ModePlaying)
			c.Apply()
			first := c.Session()

			if tc.restart {
				c.Request(ModePlaying)
				c.Apply()
				if c.Session() == first {
					t.Fatalf("restart should start a new session")
				}
			}

			c.RequestFrom(first, ModeGameOver)
			if _, err := c.Apply(); err != nil {
				t.Fatalf("apply: %v", err)
			}
			if c.Current() != tc.wantMode {
				t.Fatalf("current = %v, want %v", c.Current(), tc.wantMode)
			}
		})
	}
}

func TestControllerUnknownMode(t *testing.T) {
	var log []string
	c, _ := newTestController(&log)
	c.Request(ModeCredits)
	_, err := c.Apply()
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestControllerShowError(t *testing.T) {
	var log []string
	c, screens := newTestController(&log)
	screens[ModePlaying].showErr = errors.New("boom")
	c.Request(ModePlaying)
	if err := c.Update(); err == nil {
		t.Fatalf("expected show error to surface")
	}
}

func TestControllerCloseHidesActive(t *testing.T) {
	var log []string
	c, _ := newTestController(&log)
	c.Request(ModeMenu)
	c.Apply()
	c.Close()
	if c.Active() != nil || c.Current() != ModeNone {
		t.Fatalf("close should clear the active screen")
	}
	if log[len(log)-1] != "hide menu" {
		t.Fatalf("log = %v", log)
	}
}
