package hash

import "testing"

func TestFingerprintKnownValues(t *testing.T) {
	// Контрольные значения: первые 8 байт SHA-256 в big-endian.
	tests := []struct {
		text string
		want int64
	}{
		{"Rear_End", 3535841823334716749},
		{"No_Data", -7799511197509893685},
		{"Distracted_Driving", -2260832526487633263},
		{"123 Main Street", 3339447077425123018},
		{"a", -3848465438864589366},
	}

	for _, tt := range tests {
		if got := Fingerprint(tt.text); got != tt.want {
			t.Errorf("Fingerprint(%q) = %d, ожидалось %d", tt.text, got, tt.want)
		}
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	for _, text := range []string{"", "County Road 12", "Пешеходы"} {
		first := Fingerprint(text)
		second := Fingerprint(text)
		if first != second {
			t.Errorf("Fingerprint(%q) недетерминирован: %d != %d", text, first, second)
		}
	}
}

func TestOptional(t *testing.T) {
	if got := Optional(""); got != nil {
		t.Errorf("Optional(\"\") = %v, ожидалось nil", *got)
	}

	got := Optional("Rear_End")
	if got == nil {
		t.Fatal("Optional(\"Rear_End\") = nil")
	}
	if *got != Fingerprint("Rear_End") {
		t.Errorf("Optional(\"Rear_End\") = %d, не совпадает с Fingerprint", *got)
	}
}
