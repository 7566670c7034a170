package slack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ricardonunez-io/triage/internal/output"
	"github.com/ricardonunez-io/triage/internal/report"
)

func makeEntry() output.IncidentEntry {
	return output.IncidentEntry{
		Number:    1,
		Service:   "orders",
		Pattern:   "connection timed out after <NUM>s",
		Count:     2,
		FirstSeen: "t1",
		LastSeen:  "t2",
		Report: &report.TriageReport{
			Summary:     "DB down",
			Severity:    "P1",
			RootCause:   "overload",
			ActionItems: []string{"restart", "scale"},
		},
	}
}

func TestBuildBlocks(t *testing.T) {
	blocks := BuildBlocks(makeEntry())
	if len(blocks) != 5 {
		t.Fatalf("BuildBlocks: got %d blocks, want 5", len(blocks))
	}
	raw, err := json.Marshal(blocks)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Incident #1 [orders] P1", "DB down", "overload", "• restart", "• scale"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("blocks should contain %q", want)
		}
	}
}

func TestBuildBlocks_NoReport(t *testing.T) {
	entry := makeEntry()
	entry.Report = nil
	if blocks := BuildBlocks(entry); len(blocks) != 3 {
		t.Errorf("BuildBlocks without report: got %d blocks, want 3", len(blocks))
	}
}

func TestSeverityToEmoji(t *testing.T) {
	if severityToEmoji("p1") != "🔴" || severityToEmoji("P4") != "🟢" {
		t.Error("severityToEmoji mapping is wrong")
	}
}

func TestConfigEnabled(t *testing.T) {
	if (Config{BotToken: "x"}).Enabled() {
		t.Error("config without channel should be disabled")
	}
	if !(Config{BotToken: "x", ChannelID: "C1"}).Enabled() {
		t.Error("config with token and channel should be enabled")
	}
}

func TestSendIncident(t *testing.T) {
	var gotChannel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotChannel = r.FormValue("channel")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "channel": "C1", "ts": "1700000000.000100"}`))
	}))
	defer srv.Close()

	cfg := Config{BotToken: "xoxb-test", ChannelID: "C1", APIURL: srv.URL + "/"}
	if err := SendIncident(makeEntry(), cfg); err != nil {
		t.Fatalf("SendIncident: %v", err)
	}
	if gotChannel != "C1" {
		t.Errorf("channel: got %q, want C1", gotChannel)
	}
}

func TestSendIncident_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
	}))
	defer srv.Close()

	cfg := Config{BotToken: "xoxb-test", ChannelID: "C404", APIURL: srv.URL + "/"}
	if err := SendIncident(makeEntry(), cfg); err == nil {
		t.Error("SendIncident: expected error")
	}
}
