package cron

import (
	"Sokdak/internal/job"
	"testing"
)

func TestRegisterJobs(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"every descriptor", "@every 1m", false},
		{"six field spec", "0 */5 * * * *", false},
		{"invalid spec", "not a spec", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := NewCronManager(job.NewPostViewJob(nil), tt.spec)
			err := mgr.RegisterJobs()
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterJobs err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && mgr.Entries() != 1 {
				t.Errorf("entries = %d, want 1", mgr.Entries())
			}
		})
	}
}
