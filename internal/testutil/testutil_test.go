package testutil_test

import (
	"testing"

	"wealthcast/internal/errors"
	"wealthcast/internal/projection"
	"wealthcast/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "scenarios", "scenario_assets", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	scenario := testutil.CreateTestScenario(t, db, user.ID)
	if scenario.UserID != user.ID {
		t.Errorf("expected scenario owner %d, got %d", user.ID, scenario.UserID)
	}

	asset := testutil.CreateTestScenarioAsset(t, db, scenario.ID)
	if asset.Kind != projection.KindSecurity {
		t.Errorf("expected security asset kind, got %s", asset.Kind)
	}
	if len(asset.Params) == 0 {
		t.Error("asset params should not be empty")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrScenarioNotFound, "custom message")
	testutil.AssertAppError(t, err, "SCENARIO_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
