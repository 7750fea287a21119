package game

import "testing"

func TestParseDiscipline(t *testing.T) {
	tests := []struct {
		input    string
		expected Discipline
		wantErr  bool
	}{
		{"THD", THD, false},
		{"bps", BPS, false},
		{" MMONEY ", MMONEY, false},
		{"mj", MJ, false},
		{"gold", THD, true},
		{"", THD, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDiscipline(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDiscipline(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseDiscipline(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestPlayerNext(t *testing.T) {
	tests := []struct {
		p, expected Player
	}{
		{NoOne, UniA},
		{UniA, UniB},
		{UniB, UniC},
		{UniC, UniA},
	}
	for _, tc := range tests {
		if got := tc.p.Next(); got != tc.expected {
			t.Errorf("%v.Next() = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestSiteCode(t *testing.T) {
	tests := []struct {
		site     Site
		expected int
	}{
		{Vacant(), 0},
		{Campus(UniA), 1},
		{Campus(UniC), 3},
		{GO8(UniA), 4},
		{GO8(UniC), 6},
	}
	for _, tc := range tests {
		if got := tc.site.Code(); got != tc.expected {
			t.Errorf("%v.Code() = %d, expected %d", tc.site, got, tc.expected)
		}
	}
	if !GO8(UniB).OwnedBy(UniB) || !Campus(UniB).OwnedBy(UniB) || Vacant().OwnedBy(NoOne) {
		t.Error("OwnedBy() mismatch")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{PassAction(), "pass"},
		{CampusAction("RL"), `build_campus "RL"`},
		{RetrainAction(BPS, MJ), "retrain_students BPS->MJ"},
		{Action{Kind: ObtainPatent}, "obtain_patent"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
