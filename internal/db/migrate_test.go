package db

import (
	"io/fs"
	"sort"
	"strings"
	"testing"
)

func TestEmbeddedMigrationsAreOrderedUpFiles(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted migration names, got %v", names)
	}
	for _, name := range names {
		if !strings.HasSuffix(name, ".up.sql") {
			t.Fatalf("unexpected migration file %s", name)
		}
	}
}

func embeddedSchema(t *testing.T) string {
	t.Helper()
	var all strings.Builder
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, entry := range entries {
		contents, err := fs.ReadFile(migrationsFS, "migrations/"+entry.Name())
		if err != nil {
			t.Fatalf("read %s: %v", entry.Name(), err)
		}
		all.Write(contents)
	}
	return all.String()
}

func TestMigrationsCreateEveryTable(t *testing.T) {
	schema := embeddedSchema(t)
	for _, table := range []string{"food", "meals", "meal_foods", "consumed_meals", "daily_goal"} {
		if !strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Fatalf("expected migration for table %s", table)
		}
	}
}

func TestQuantityColumnsKeepFullPrecision(t *testing.T) {
	schema := embeddedSchema(t)
	if strings.Contains(strings.ToUpper(schema), "NUMERIC") {
		t.Fatalf("quantity columns must not use fixed-point NUMERIC")
	}
	for _, column := range []string{
		"portion_amount DOUBLE PRECISION",
		"protein_per_portion DOUBLE PRECISION",
		"amount DOUBLE PRECISION",
		"protein DOUBLE PRECISION",
		"carbohydrate DOUBLE PRECISION",
		"fat DOUBLE PRECISION",
		"calories DOUBLE PRECISION",
	} {
		if !strings.Contains(schema, column) {
			t.Fatalf("expected column %q", column)
		}
	}
}
