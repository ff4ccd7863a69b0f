package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFlexibleTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"date de début de séjour ISO", `"2026-07-14T14:00:00"`, false},
		{"date saisie en datetime-local", `"2026-07-14T14:00"`, false},
		{"date RFC3339", `"2026-07-14T14:00:00Z"`, false},
		{"null", `null`, false},
		{"vide", `""`, false},
		{"invalide", `"demain"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexibleTime
			err := json.Unmarshal([]byte(tt.input), &ft)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() erreur = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFlexibleTime_MarshalJSON(t *testing.T) {
	var ft FlexibleTime
	if err := json.Unmarshal([]byte(`"2026-07-14T14:00:00"`), &ft); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	data, err := json.Marshal(ft)
	if err != nil {
		t.Fatalf("MarshalJSON() erreur = %v", err)
	}

	// La date repart telle qu'elle a été saisie, en heure française sans Z
	if got := string(data); got != `"2026-07-14T14:00:00"` {
		t.Errorf("MarshalJSON() = %s, attendu la date saisie", got)
	}
	if strings.Contains(string(data), "Z") {
		t.Errorf("MarshalJSON() ne doit pas contenir de suffixe Z, got %s", data)
	}
}

func TestFlexibleTime_zero(t *testing.T) {
	var ft FlexibleTime
	data, err := json.Marshal(ft)
	if err != nil {
		t.Fatalf("MarshalJSON() erreur = %v", err)
	}
	if string(data) != "null" {
		t.Errorf("MarshalJSON() d'une date vide = %s, attendu null", data)
	}
}
