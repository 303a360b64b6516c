package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Errorf("alive with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}
		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Errorf("dead with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
		if got := IsBirth(neighbors, false); got != wantBorn {
			t.Errorf("IsBirth(%d, false) = %v, want %v", neighbors, got, wantBorn)
		}
		if IsBirth(neighbors, true) {
			t.Errorf("IsBirth(%d, true) = true, alive cells are never born", neighbors)
		}
	}
}

func TestNextMaturity(t *testing.T) {
	tenths := BirthMaturity
	for n := 1; n <= 12; n++ {
		tenths = NextMaturity(tenths)
		want := uint8(min(n+1, 10))
		if tenths != want {
			t.Fatalf("after %d survivals got %d tenths, want %d", n, tenths, want)
		}
	}
	if got := MaturityValue(BirthMaturity); got != 0.1 {
		t.Errorf("birth maturity = %v, want 0.1", got)
	}
	if got := MaturityValue(MaxMaturity); got != 1.0 {
		t.Errorf("max maturity = %v, want 1.0", got)
	}
}
