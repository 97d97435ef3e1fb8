package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-10-01"`), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"2025-10-01"` {
		t.Fatalf("expected \"2025-10-01\", got %s", out)
	}
}

func TestDateRejectsOtherFormats(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"01/10/2025"`), &d); err == nil {
		t.Fatal("expected error for DD/MM/YYYY")
	}
}

func TestDateScanFromTime(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if d.String() != "2024-06-30" {
		t.Fatalf("expected 2024-06-30, got %s", d)
	}
}

func TestJSONMapScanAndValue(t *testing.T) {
	var m JSONMap
	if err := m.Scan([]byte(`{"origem":"legado"}`)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if m["origem"] != "legado" {
		t.Fatalf("unexpected map: %+v", m)
	}

	var nilMap JSONMap
	v, err := nilMap.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if string(v.([]byte)) != "{}" {
		t.Fatalf("nil map must serialize as {}, got %s", v)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPendente, StatusPago, StatusCancelado} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Status("atrasado").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}
