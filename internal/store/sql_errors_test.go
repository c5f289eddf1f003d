package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("exec: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: Unclassified},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: ForeignKeyViolation},
		{name: "check", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, want: Unclassified},
		{name: "postgres error", err: pgError(pgerrcode.UniqueViolation), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
