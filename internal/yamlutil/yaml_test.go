package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-json2tex/internal/yamlutil"
)

type testConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: thesis\ncount: 3"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "thesis" {
					t.Errorf("Name = %q, want %q", cfg.Name, "thesis")
				}
				if cfg.Count != 3 {
					t.Errorf("Count = %d, want %d", cfg.Count, 3)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("name: x\nbogus: y"), &testConfig{})
	if err == nil {
		t.Fatal("UnmarshalStrict() error = nil, want unknown field error")
	}
}

func TestUnmarshalStrictInputTooLarge(t *testing.T) {
	t.Parallel()

	old := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 8
	defer func() { yamlutil.MaxInputSize = old }()

	err := yamlutil.UnmarshalStrict([]byte("name: abcdefghij"), &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(testConfig{Name: "thesis", Count: 2})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "name: thesis") {
		t.Errorf("Marshal() = %q, want name field", data)
	}

	var back testConfig
	if err := yamlutil.UnmarshalStrict(data, &back); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if back.Name != "thesis" || back.Count != 2 {
		t.Errorf("round trip = %+v", back)
	}
}
