package credittrail

import (
	"testing"
)

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Append("b", "two")
	w.Append("c", []int{3})

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":"two","c":[3]}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestJSONObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("id", "x")
	w.Optional("notes", "")
	w.Optional("count", 0)
	w.Optional("kept", "value")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"x","kept":"value"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_ErrorSticks(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {}) // functions cannot marshal
	w.Append("later", 1)

	if _, err := w.MarshalJSON(); err == nil {
		t.Error("expected the marshal error to surface")
	}
}
