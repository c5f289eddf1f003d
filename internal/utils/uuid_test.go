// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := g.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIsValidUUID(t *testing.T) {
	if !IsValidUUID(NewUUIDGenerator().Generate()) {
		t.Error("generated uuid must be valid")
	}
	for _, s := range []string{"", "42", "not-a-uuid", "0190f5a2-0000-7000-8000"} {
		if IsValidUUID(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
