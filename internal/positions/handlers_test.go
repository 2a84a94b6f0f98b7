package positions

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tradex-backend/internal/models"
)

func setupPositionsApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// One connection: a pooled second conn would get its own :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Position{}))
	h := &Handlers{Service: &Service{DB: db}}
	app := fiber.New()
	app.Get("/addpositions", h.ListPositions)
	return app, db
}

func TestListPositions(t *testing.T) {
	app, db := setupPositionsApp(t)
	require.NoError(t, db.Create(&models.Position{
		Product: "CNC", Name: "EVEREADY", Qty: 2, Avg: 316.27, Price: 312.35, IsLoss: true,
	}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/addpositions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, _ := body["data"].([]interface{})
	require.Len(t, data, 1)
	pos, _ := data[0].(map[string]interface{})
	assert.Equal(t, "EVEREADY", pos["name"])
	assert.Equal(t, "CNC", pos["product"])
	assert.Equal(t, true, pos["isLoss"])
}

func TestListPositions_Empty(t *testing.T) {
	app, _ := setupPositionsApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/addpositions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].([]interface{})
	assert.True(t, ok || body["data"] == nil)
	assert.Len(t, data, 0)
}
