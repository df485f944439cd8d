package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/waweru234/houselook-rr/config"
	"github.com/waweru234/houselook-rr/models"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedController struct {
	collection *mongo.Collection
}

func NewSavedController() *SavedController {
	collectionName := os.Getenv("MONGODB_COLLECTION_SAVED")
	if collectionName == "" {
		collectionName = "saved"
	}
	return &SavedController{
		collection: config.GetCollection(collectionName),
	}
}

// SaveProperty bookmarks a property. Saving again refreshes the timestamp,
// restarting the 48 hour window.
func (sc *SavedController) SaveProperty(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)
	propertyID := c.Param("propertyId")
	if propertyID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property ID is required"})
	}

	now := time.Now()
	filter := bson.M{"userId": userID, "propertyId": propertyID}
	update := bson.M{"$set": bson.M{"savedAt": now}}

	_, err := sc.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save property"})
	}

	return c.JSON(http.StatusCreated, models.SavedEntry{
		UserID:     userID,
		PropertyID: propertyID,
		SavedAt:    now,
	})
}

func (sc *SavedController) UnsaveProperty(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)
	propertyID := c.Param("propertyId")
	if propertyID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property ID is required"})
	}

	_, err := sc.collection.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove saved property"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Saved property removed successfully"})
}

// GetSaved returns the caller's still-valid saved property ids. Entries past
// the 48 hour window are deleted as they are encountered; an eviction failure
// aborts the listing rather than returning a half-cleaned view.
func (sc *SavedController) GetSaved(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	cursor, err := sc.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch saved properties"})
	}
	defer cursor.Close(ctx)

	entries := []models.SavedEntry{}
	for cursor.Next(ctx) {
		var entry models.SavedEntry
		if err := cursor.Decode(&entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch saved properties"})
	}

	valid, expired := models.PartitionSaved(entries, time.Now())
	for _, propertyID := range expired {
		_, err := sc.collection.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to evict expired saved property"})
		}
	}

	if valid == nil {
		valid = []string{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"propertyIds": valid,
	})
}
