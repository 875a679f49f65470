package core

import "testing"

func TestApplySimOptions(t *testing.T) {
	cfg := ApplySimOptions()
	if cfg.SampleRate != 60 || cfg.Duration != 10 {
		t.Fatalf("defaults = %+v, want 60 Hz / 10 s", cfg)
	}

	cfg = ApplySimOptions(WithSampleRate(1000), WithDuration(2.5), nil)
	if cfg.SampleRate != 1000 || cfg.Duration != 2.5 {
		t.Fatalf("options not applied: %+v", cfg)
	}

	// Invalid values are ignored.
	cfg = ApplySimOptions(WithSampleRate(-1), WithDuration(0))
	if cfg.SampleRate != 60 || cfg.Duration != 10 {
		t.Fatalf("invalid options mutated config: %+v", cfg)
	}
}

func TestSimConfig_Derived(t *testing.T) {
	cfg := SimConfig{SampleRate: 60, Duration: 10}

	if got := cfg.SamplePeriod(); got != 1.0/60 {
		t.Errorf("SamplePeriod = %v, want 1/60", got)
	}

	if got := cfg.Samples(); got != 600 {
		t.Errorf("Samples = %v, want 600", got)
	}

	if got := (SimConfig{}).SamplePeriod(); got != 0 {
		t.Errorf("zero config SamplePeriod = %v, want 0", got)
	}

	if got := (SimConfig{SampleRate: 10, Duration: -1}).Samples(); got != 0 {
		t.Errorf("negative duration Samples = %v, want 0", got)
	}
}
