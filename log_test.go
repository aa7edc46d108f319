package condql_test

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/zoobzio/condql"
)

func TestSetLogger(t *testing.T) {
	defer condql.SetLogger(nil)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	condql.SetLogger(logger)

	if condql.Logger() != logger {
		t.Fatal("Expected Logger to return the installed logger")
	}

	if _, err := condql.Parse(condql.S("active")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a debug entry")
	}
	if entry.Level != log.DebugLevel {
		t.Errorf("Expected debug level, got %s", entry.Level)
	}
	if entry.Message != "resolved bare column" || entry.Data["column"] != "active" {
		t.Errorf("Unexpected entry: %s %v", entry.Message, entry.Data)
	}
}

func TestSetLogger_QuietAboveDebug(t *testing.T) {
	defer condql.SetLogger(nil)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.InfoLevel)
	condql.SetLogger(logger)

	if _, err := condql.Parse(condql.M("a", 1, "b", 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := len(hook.AllEntries()); n != 0 {
		t.Errorf("Expected no entries at info level, got %d", n)
	}
}

func TestSetLogger_NilRestoresDefault(t *testing.T) {
	condql.SetLogger(nil)
	if condql.Logger() != log.StandardLogger() {
		t.Error("Expected the standard logger after SetLogger(nil)")
	}
}
