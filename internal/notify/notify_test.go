package notify

import "testing"

func TestLoadPreferencesEnvOverride(t *testing.T) {
	t.Setenv("GRADFRAME_NOTIFY_TITLE", "My Frames")
	t.Setenv("GRADFRAME_NOTIFY_EXPORT_TEXT", "Done: %s")

	prefs := LoadPreferences()
	if prefs.Title != "My Frames" {
		t.Errorf("Title = %q", prefs.Title)
	}
	if got := prefs.Events[EventExport].Template; got != "Done: %s" {
		t.Errorf("export template = %q", got)
	}
	if got := prefs.Events[EventCopy].Template; got != DefaultPreferences().Events[EventCopy].Template {
		t.Errorf("copy template changed unexpectedly: %q", got)
	}
}

func TestEventsDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	for _, ev := range []Event{EventExport, EventCopy} {
		if n.enabledFor(ev) {
			t.Errorf("event %s enabled by default", ev)
		}
	}
	n.Enable(EventExport, true)
	if !n.enabledFor(EventExport) {
		t.Error("EventExport not enabled after Enable")
	}
	if n.enabledFor(EventCopy) {
		t.Error("EventCopy enabled without Enable")
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventExport, true)
	n.Export("/tmp/out.png")
	n.Copy("framed photo")
}
