package field

import (
	"errors"
	"math"
	"testing"

	"github.com/newtron-network/fgobj/pkg/util"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    int64
		wantErr error
	}{
		{"int", 42, 42, nil},
		{"whole float", float64(4094), 4094, nil},
		{"negative float", float64(-5), -5, nil},
		{"largest exact float", float64(1 << 62), 1 << 62, nil},
		{"uint64 in range", uint64(7), 7, nil},
		{"fractional float", 1.5, 0, util.ErrTypeMismatch},
		{"float beyond int64", 1e20, 0, util.ErrTypeMismatch},
		{"float at 2^63", float64(1 << 63), 0, util.ErrTypeMismatch},
		{"float below int64", -1e20, 0, util.ErrTypeMismatch},
		{"infinity", math.Inf(1), 0, util.ErrTypeMismatch},
		{"nan", math.NaN(), 0, util.ErrTypeMismatch},
		{"uint64 beyond int64", uint64(math.MaxUint64), 0, util.ErrTypeMismatch},
		{"string", "42", 0, util.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsInt("vlanid", tt.raw)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AsInt(%v) unexpected error: %v", tt.raw, err)
				}
				if got == nil || *got != tt.want {
					t.Errorf("AsInt(%v) = %v, want %d", tt.raw, got, tt.want)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AsInt(%v) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			var fe *util.FieldError
			if !errors.As(err, &fe) || fe.Field != "vlanid" {
				t.Errorf("AsInt(%v) error = %#v, want a FieldError on vlanid", tt.raw, err)
			}
		})
	}
}

func TestAsIntKeepsOriginalValue(t *testing.T) {
	_, err := AsInt("seq-num", 1e20)
	var fe *util.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want a FieldError", err)
	}
	if v, ok := fe.Value.(float64); !ok || v != 1e20 {
		t.Errorf("FieldError.Value = %#v, want 1e20", fe.Value)
	}
}

func TestAsIntsRejectsHugeFloats(t *testing.T) {
	_, err := AsInts("dhgrp", []interface{}{float64(14), 1e20})
	if !errors.Is(err, util.ErrTypeMismatch) {
		t.Errorf("AsInts error = %v, want type mismatch", err)
	}
}
