package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Port != 20474 {
		t.Fatalf("port = %d", cfg.Server.Port)
	}
	if cfg.Import.ProjectStatus != "scheduled" {
		t.Fatalf("project status = %q", cfg.Import.ProjectStatus)
	}
	if cfg.Import.TravelOutDays != 1 || cfg.Import.TravelBackDays != 1 {
		t.Fatalf("travel days = %d/%d", cfg.Import.TravelOutDays, cfg.Import.TravelBackDays)
	}
}

func TestConfigTomlRoundTrip(t *testing.T) {
	t.Parallel()

	src := `
[server]
port = 9090
dev_mode = true

[import]
project_status = "active"
travel_out_days = 2

[[import.exclude]]
sheet = "John Smith"
cell = "E5"
`
	cfg := DefaultConfig()
	if err := toml.Unmarshal([]byte(src), cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.Server.Port != 9090 || !cfg.Server.DevMode {
		t.Fatalf("server = %+v", cfg.Server)
	}
	if cfg.Import.ProjectStatus != "active" || cfg.Import.TravelOutDays != 2 {
		t.Fatalf("import = %+v", cfg.Import)
	}
	if len(cfg.Import.Exclude) != 1 || cfg.Import.Exclude[0].Cell != "E5" {
		t.Fatalf("exclude = %+v", cfg.Import.Exclude)
	}
	// Section absent from the file keeps its default.
	if cfg.Data.DataDir != "data" {
		t.Fatalf("data dir = %q", cfg.Data.DataDir)
	}
}

func TestImportConfigCellFilter(t *testing.T) {
	t.Parallel()

	ic := ImportConfig{Exclude: []ExcludeCell{
		{Sheet: "John Smith", Cell: "E5"},
		{Sheet: "Jane Doe", Cell: "not-a-ref"},
	}}
	filter := ic.CellFilter()
	if filter == nil {
		t.Fatal("filter is nil with exclusions configured")
	}

	if !filter("John Smith", 5, 5) {
		t.Error("configured cell not excluded")
	}
	if filter("John Smith", 5, 6) {
		t.Error("unconfigured cell excluded")
	}
	if filter("Jane Doe", 5, 5) {
		t.Error("unparsable reference should be ignored, not match")
	}
}

func TestImportConfigCellFilter_EmptyIsNil(t *testing.T) {
	t.Parallel()

	if f := (ImportConfig{}).CellFilter(); f != nil {
		t.Fatal("empty exclusion list should yield a nil filter")
	}
}
