package cliparse

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags provided",
			args: []string{"-p", "4000", "-d", "postgres://localhost/surveys", "-t", "postgres", "--admin-key", "secret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 4000 {
					t.Errorf("Port = %d, want 4000", cfg.Port)
				}
				if cfg.DatabaseType != "postgres" {
					t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
				}
			},
		},
		{
			name: "sqlite defaults",
			args: []string{"--admin-key", "secret"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 3001 {
					t.Errorf("Port = %d, want default 3001", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
				}
				if cfg.DatabaseURL != "file:menu_survey.db" {
					t.Errorf("DatabaseURL = %q, want default sqlite file", cfg.DatabaseURL)
				}
			},
		},
		{
			name:    "postgres without URL",
			args:    []string{"-t", "postgres", "--admin-key", "secret"},
			wantErr: true,
		},
		{
			name:    "unknown database type",
			args:    []string{"-t", "mysql", "--admin-key", "secret"},
			wantErr: true,
		},
		{
			name:    "missing admin key",
			args:    []string{"-p", "4000"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
