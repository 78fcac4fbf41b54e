package multipart

import "testing"

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantEssence string
		plainText   bool
	}{
		{name: "simple", input: "application/json", wantEssence: "application/json"},
		{name: "uppercased", input: "Application/JSON", wantEssence: "application/json"},
		{name: "with params", input: "text/plain; charset=utf-8", wantEssence: "text/plain", plainText: false},
		{name: "canonical plain", input: "text/plain", wantEssence: "text/plain", plainText: true},
		{name: "garbage", input: "not a valid mime", wantErr: true},
		{name: "missing subtype", input: "text", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := ParseMediaType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mt.Essence() != tt.wantEssence {
				t.Errorf("essence: expected %q, got %q", tt.wantEssence, mt.Essence())
			}
			if mt.IsPlainText() != tt.plainText {
				t.Errorf("IsPlainText: expected %v for %q", tt.plainText, tt.input)
			}
		})
	}
}

func TestMediaType_Param(t *testing.T) {
	mt, err := ParseMediaType("text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("ParseMediaType: %v", err)
	}
	if v, ok := mt.Param("charset"); !ok || v != "utf-8" {
		t.Errorf("expected charset=utf-8, got %q (%v)", v, ok)
	}
	if _, ok := mt.Param("boundary"); ok {
		t.Error("unexpected boundary param")
	}
}

func TestTextPlain(t *testing.T) {
	if !TextPlain.IsPlainText() {
		t.Error("TextPlain should be canonical")
	}
	if TextPlain.String() != "text/plain" {
		t.Errorf("expected 'text/plain', got %q", TextPlain.String())
	}
}
