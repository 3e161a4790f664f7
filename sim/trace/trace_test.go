package trace

import (
	"testing"
)

func TestSimulationTrace_RecordAdmission_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN an admission record is recorded
	st.RecordAdmission(AdmissionRecord{
		ArrivalID:  1,
		Clock:      0,
		Outcome:    OutcomeServed,
		QueueDepth: 0,
	})

	// THEN the trace contains one admission record with correct data
	if len(st.Admissions) != 1 {
		t.Fatalf("expected 1 admission, got %d", len(st.Admissions))
	}
	if st.Admissions[0].ArrivalID != 1 {
		t.Errorf("expected arrival ID 1, got %d", st.Admissions[0].ArrivalID)
	}
	if st.Admissions[0].Outcome != OutcomeServed {
		t.Errorf("expected outcome served, got %s", st.Admissions[0].Outcome)
	}
}

func TestSimulationTrace_RecordRouting_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN a routing record is recorded
	st.RecordRouting(RoutingRecord{
		ArrivalID: 3,
		Clock:     3,
		Server:    "Able",
		FromQueue: true,
		Delay:     1,
		FreeAt:    map[string]int64{"Able": 3, "Baker": 4},
	})

	// THEN the trace contains one routing record with correct data
	if len(st.Routings) != 1 {
		t.Fatalf("expected 1 routing, got %d", len(st.Routings))
	}
	if st.Routings[0].Server != "Able" {
		t.Errorf("expected Able, got %s", st.Routings[0].Server)
	}
	if !st.Routings[0].FromQueue {
		t.Error("expected FromQueue=true")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN multiple records are added
	st.RecordAdmission(AdmissionRecord{ArrivalID: 1, Clock: 0, Outcome: OutcomeServed})
	st.RecordAdmission(AdmissionRecord{ArrivalID: 2, Clock: 1, Outcome: OutcomeQueued, QueueDepth: 1})
	st.RecordAdmission(AdmissionRecord{ArrivalID: 3, Clock: 2, Outcome: OutcomeBalked, QueueDepth: 1})

	// THEN records are in insertion order
	for i, want := range []int{1, 2, 3} {
		if st.Admissions[i].ArrivalID != want {
			t.Errorf("admission[%d]: got arrival %d, want %d", i, st.Admissions[i].ArrivalID, want)
		}
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	tests := []struct {
		name string
		st   *SimulationTrace
		want bool
	}{
		{"nil trace", nil, false},
		{"level none", NewSimulationTrace(TraceLevelNone), false},
		{"level decisions", NewSimulationTrace(TraceLevelDecisions), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{"", true},
		{"none", true},
		{"decisions", true},
		{"verbose", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.want {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
