package prefabs

import (
	"image/color"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedPrefabs(t *testing.T) {
	t.Run("walker", func(t *testing.T) {
		spec, err := LoadSpec[AgentSpec]("walker.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := spec.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		if spec.Movement != "ground" || spec.Patrol == nil || spec.Melee == nil {
			t.Fatalf("walker spec incomplete: %+v", spec)
		}
	})

	t.Run("flyer", func(t *testing.T) {
		spec, err := LoadSpec[AgentSpec]("flyer.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := spec.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		if spec.Movement != "flying" || spec.VerticalSeparation <= 0 {
			t.Fatalf("flyer spec incomplete: %+v", spec)
		}
	})

	t.Run("boss", func(t *testing.T) {
		spec, err := LoadSpec[BossSpec]("boss.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := spec.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		if len(spec.Clips["attack"]) != 2 {
			t.Fatalf("boss attack clip needs damage_on/damage_off cues: %+v", spec.Clips)
		}
	})

	t.Run("arena", func(t *testing.T) {
		spec, err := LoadSpec[LevelSpec]("arena.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if err := spec.Validate(); err != nil {
			t.Fatalf("validate: %v", err)
		}
		if len(spec.Spawns) == 0 || spec.Boss == nil {
			t.Fatalf("arena spec incomplete: %+v", spec)
		}
	})
}

func TestAgentSpecValidate(t *testing.T) {
	valid := func() AgentSpec {
		return AgentSpec{Name: "x", Movement: "ground", MoveSpeed: 10, Health: 5}
	}

	cases := []struct {
		name    string
		mutate  func(*AgentSpec)
		wantErr string
	}{
		{"ok", func(*AgentSpec) {}, ""},
		{"missing_name", func(s *AgentSpec) { s.Name = "" }, "missing name"},
		{"bad_movement", func(s *AgentSpec) { s.Movement = "swimming" }, "movement"},
		{"zero_speed", func(s *AgentSpec) { s.MoveSpeed = 0 }, "move_speed"},
		{"zero_health", func(s *AgentSpec) { s.Health = 0 }, "health"},
		{"negative_memory", func(s *AgentSpec) { s.MemoryDuration = -1 }, "memory_duration"},
		{"meleeless_damage", func(s *AgentSpec) { s.Melee = &MeleeSpec{} }, "melee damage"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := valid()
			c.mutate(&spec)
			err := spec.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, c.wantErr)
			}
		})
	}
}

func TestAgentSpecParams(t *testing.T) {
	spec, err := LoadSpec[AgentSpec]("walker.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	p := spec.Params(300, 400)
	if p.X != 300 || p.Y != 400 {
		t.Fatalf("spawn position lost: %+v", p)
	}
	if p.Flying {
		t.Fatal("walker marked flying")
	}
	if p.Patrol == nil {
		t.Fatal("patrol route dropped")
	}
	// Patrol waypoints are absolute, derived from the spawn position.
	if p.Patrol.A.X != 300 || p.Patrol.B.X != 300+180 {
		t.Fatalf("patrol route = %+v, want absolute 300/480", p.Patrol)
	}
	if p.Melee == nil || p.Melee.Damage != 8 {
		t.Fatalf("melee config dropped: %+v", p.Melee)
	}
	if len(p.Clips["attack"]) != 2 {
		t.Fatalf("clips dropped: %+v", p.Clips)
	}
	// Sanitizers must have filled planner defaults.
	if p.Agent.Planner.Rings < 1 || p.Agent.Planner.Epsilon <= 0 {
		t.Fatalf("planner not sanitized: %+v", p.Agent.Planner)
	}
}

func TestBossSpecParamsInjectsEdges(t *testing.T) {
	spec, err := LoadSpec[BossSpec]("boss.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := spec.Params(1100, 380, 40, 1240, 24)
	if p.Config.EdgeLeftX != 40 || p.Config.EdgeRightX != 1240 || p.Config.EdgeBuffer != 24 {
		t.Fatalf("edges not injected: %+v", p.Config)
	}
	if p.Config.RetreatDamageThreshold != 40 {
		t.Fatalf("retreat threshold = %v, want 40", p.Config.RetreatDamageThreshold)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"rgb", `"#ff0080"`, color.RGBA{R: 255, G: 0, B: 128, A: 255}, false},
		{"rgba", `"#ff008040"`, color.RGBA{R: 255, G: 0, B: 128, A: 64}, false},
		{"bad_length", `"#ff00"`, color.RGBA{}, true},
		{"not_hex", `"#zzzzzz"`, color.RGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Value != c.want {
				t.Fatalf("color = %+v, want %+v", got.Value, c.want)
			}
		})
	}
}

func TestApplyDifficulty(t *testing.T) {
	load := func(t *testing.T) AgentSpec {
		t.Helper()
		spec, err := LoadSpec[AgentSpec]("walker.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		return spec
	}

	t.Run("normal_is_identity", func(t *testing.T) {
		spec := load(t)
		if err := ApplyDifficulty(&spec, "difficulty.tengo", 1); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if spec.Health != 40 || spec.Melee.Damage != 8 {
			t.Fatalf("normal difficulty changed stats: health=%v damage=%v", spec.Health, spec.Melee.Damage)
		}
	})

	t.Run("easy_scales_down", func(t *testing.T) {
		spec := load(t)
		if err := ApplyDifficulty(&spec, "difficulty.tengo", 0); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if spec.Health >= 40 {
			t.Fatalf("easy health = %v, want below 40", spec.Health)
		}
	})

	t.Run("hard_scales_up", func(t *testing.T) {
		spec := load(t)
		if err := ApplyDifficulty(&spec, "difficulty.tengo", 2); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if spec.Health != 60 || spec.Melee.Damage != 12 {
			t.Fatalf("hard stats = health %v damage %v, want 60/12", spec.Health, spec.Melee.Damage)
		}
		if spec.VisionRadius <= 260 || spec.MemoryDuration != 4.5 {
			t.Fatalf("hard perception = vision %v memory %v", spec.VisionRadius, spec.MemoryDuration)
		}
	})

	t.Run("missing_script_fails", func(t *testing.T) {
		spec := load(t)
		if err := ApplyDifficulty(&spec, "nope.tengo", 1); err == nil {
			t.Fatal("expected error for missing script")
		}
	})
}
