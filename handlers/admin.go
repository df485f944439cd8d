package handlers

import (
	"net/http"

	"github.com/waweru234/houselook-rr/config"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminController struct {
	users      *mongo.Collection
	properties *mongo.Collection
	topups     *mongo.Collection
	leads      *mongo.Collection
}

func NewAdminController() *AdminController {
	return &AdminController{
		users:      config.GetCollection("users"),
		properties: config.GetCollection("properties"),
		topups:     config.GetCollection("topups"),
		leads:      config.GetCollection("leads"),
	}
}

// GetStatistics reports marketplace totals. Revenue is the sum of recorded
// top-ups, at one shilling per point.
func (ac *AdminController) GetStatistics(c echo.Context) error {
	ctx := c.Request().Context()

	totalUsers, err := ac.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count users"})
	}

	totalProperties, err := ac.properties.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count properties"})
	}

	totalLeads, err := ac.leads.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count leads"})
	}

	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$points"}}},
	}
	cursor, err := ac.topups.Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to compute revenue"})
	}
	defer cursor.Close(ctx)

	totalRevenue := 0
	if cursor.Next(ctx) {
		var result struct {
			Total int `bson:"total"`
		}
		if err := cursor.Decode(&result); err == nil {
			totalRevenue = result.Total
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"totalUsers":      totalUsers,
		"totalProperties": totalProperties,
		"totalLeads":      totalLeads,
		"totalRevenue":    totalRevenue,
	})
}
