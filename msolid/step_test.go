// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"encoding/json"
	"testing"
)

func TestStepJSONRoundTrip(t *testing.T) {
	step := Step{
		Control: []ControlKind{StressControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled},
		Target:  []float64{300, 0, 0, 0, 0, 0},
		TStart:  0,
		TEnd:    1,
	}
	b, err := json.Marshal(Path{Steps: []Step{step}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var p Path
	if err := json.Unmarshal(b, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(p.Steps) != 1 {
		t.Fatalf("expected one step, got %d", len(p.Steps))
	}
	got := p.Steps[0]
	if got.Control[0] != StressControlled || got.Control[1] != StrainControlled {
		t.Fatalf("control kinds did not round-trip: %v", got.Control)
	}
	if got.Target[0] != 300 {
		t.Fatalf("target did not round-trip: %v", got.Target)
	}
}
