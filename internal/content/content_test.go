package content

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default content invalid: %v", err)
	}
}

func TestParseRoundTripsDefault(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.Skills) != len(Default().Skills) || p.About.Stats[3].Suffix != "%" {
		t.Fatalf("unexpected parsed content: %+v", p.About.Stats)
	}
}

func TestParseRejectsBadNumbers(t *testing.T) {
	data := []byte(`
hero:
  title: Backend
about:
  stats:
    - number: -3
      label: Years
skills:
  - name: Go
    level: 140
`)
	_, err := Parse(data)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"about.stats[0].number", "skills[0].level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got %v", want, err)
		}
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	data := []byte("hero:\n  title: Backend\n  colour: red\n")
	if _, err := Parse(data); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatalf("expected empty content to be rejected")
	}
}
