package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wealthcast/internal/models"
	"wealthcast/internal/projection"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestScenario creates an empty comparison scenario for the user.
func CreateTestScenario(t *testing.T, db *gorm.DB, userID uint) *models.Scenario {
	t.Helper()

	scenario := &models.Scenario{
		UserID: userID,
		Name:   fmt.Sprintf("Test Scenario %d", nextID()),
	}
	if err := db.Create(scenario).Error; err != nil {
		t.Fatalf("failed to create test scenario: %v", err)
	}
	return scenario
}

// CreateTestScenarioAsset adds a security asset with valid parameters to the
// scenario.
func CreateTestScenarioAsset(t *testing.T, db *gorm.DB, scenarioID uint) *models.ScenarioAsset {
	t.Helper()

	n := nextID()
	params := SecurityParamsJSON(t, projection.SecurityParams{
		Name:              fmt.Sprintf("Test Security %d", n),
		InitialInvestment: 10000,
		AnnualReturn:      0.07,
		TimeHorizon:       10,
	})

	asset := &models.ScenarioAsset{
		ScenarioID: scenarioID,
		Kind:       projection.KindSecurity,
		Label:      fmt.Sprintf("Test Security %d", n),
		Params:     params,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test scenario asset: %v", err)
	}
	return asset
}

// SecurityParamsJSON marshals security parameters for use as an asset payload.
func SecurityParamsJSON(t *testing.T, p projection.SecurityParams) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("failed to marshal security params: %v", err)
	}
	return data
}
