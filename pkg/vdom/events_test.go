package vdom

import "testing"

func TestIsEventProp(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onclick", true},
		{"onClick", true},
		{"ONCLICK", true},
		{"on", false},
		{"one", true},
		{"class", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsEventProp(tt.key); got != tt.want {
			t.Errorf("IsEventProp(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"onClick", "click"},
		{"oninput", "input"},
		{"OnKeyDown", "keydown"},
		{"class", ""},
	}
	for _, tt := range tests {
		if got := EventName(tt.key); got != tt.want {
			t.Errorf("EventName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestOnHelpers(t *testing.T) {
	tests := []struct {
		h    EventHandler
		want string
	}{
		{OnClick(nil), "onclick"},
		{OnDblClick(nil), "ondblclick"},
		{OnInput(nil), "oninput"},
		{OnChange(nil), "onchange"},
		{OnSubmit(nil), "onsubmit"},
		{OnKeyDown(nil), "onkeydown"},
		{On("Scroll", nil), "onscroll"},
	}
	for _, tt := range tests {
		if tt.h.Event != tt.want {
			t.Errorf("Event = %q, want %q", tt.h.Event, tt.want)
		}
	}
}

func TestDispatch(t *testing.T) {
	ev := &Event{Type: "input", Value: "abc"}

	var calls []string
	handlers := []any{
		func() { calls = append(calls, "plain") },
		func(e *Event) { calls = append(calls, "event:"+e.Type) },
		func(v string) { calls = append(calls, "value:"+v) },
	}
	for _, h := range handlers {
		if !Dispatch(h, ev) {
			t.Errorf("Dispatch(%T) = false, want true", h)
		}
	}

	want := []string{"plain", "event:input", "value:abc"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}

	if Dispatch(func(int) {}, ev) {
		t.Error("Dispatch should reject unsupported signatures")
	}
	if Dispatch(nil, ev) {
		t.Error("Dispatch should reject nil handlers")
	}
}
