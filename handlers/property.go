package handlers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/waweru234/houselook-rr/config"
	"github.com/waweru234/houselook-rr/models"
	"github.com/waweru234/houselook-rr/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	listingsCacheKey = "listings:all"
	listingsCacheTTL = 5 * time.Minute
	resultsCacheTTL  = time.Minute
)

type PropertyController struct {
	collection *mongo.Collection
	users      *mongo.Collection
	views      *mongo.Collection
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		collection: config.GetCollection(collectionName),
		users:      config.GetCollection("users"),
		views:      config.GetCollection("views"),
	}
}

// loadListings returns the full normalized collection, from cache when warm.
func (pc *PropertyController) loadListings(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if hit, err := utils.GetCached(ctx, listingsCacheKey, &listings); err == nil && hit {
		return listings, nil
	}

	cursor, err := pc.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings = []models.Listing{}
	for cursor.Next(ctx) {
		var doc models.PropertyDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		listings = append(listings, doc.Normalize())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	if err := utils.SetCached(ctx, listingsCacheKey, listings, listingsCacheTTL); err != nil {
		log.Printf("failed to cache listings: %v", err)
	}
	return listings, nil
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	params := map[string]string{
		"location":  c.QueryParam("location"),
		"price":     c.QueryParam("price"),
		"type":      c.QueryParam("type"),
		"bedrooms":  c.QueryParam("bedrooms"),
		"amenities": c.QueryParam("amenities"),
		"sort":      c.QueryParam("sort"),
	}

	cacheKey := utils.GenerateQueryCacheKey("properties", params)
	var cached []models.Listing
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return c.JSON(http.StatusOK, cached)
	}

	listings, err := pc.loadListings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	criteria := ParseFilterCriteria(params)
	filtered := ApplyFilters(listings, criteria)
	filtered = SortListings(filtered, params["sort"])

	if err := utils.SetCached(ctx, cacheKey, filtered, resultsCacheTTL); err != nil {
		c.Logger().Warnf("failed to cache property results: %v", err)
	}

	return c.JSON(http.StatusOK, filtered)
}

// GetProperty serves the full detail page. The first view by a user costs
// PointsPerView; repeat views of the same property are free. The debit is a
// single guarded update, so a short balance can never go negative and
// concurrent views cannot double-spend.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)
	id := c.Param("id")

	var doc models.PropertyDoc
	err := pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	charged := 0
	count, err := pc.views.CountDocuments(ctx, bson.M{"userId": userID, "propertyId": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check view history"})
	}

	if count == 0 {
		var user models.User
		err := pc.users.FindOneAndUpdate(ctx,
			bson.M{"_id": userID, "points": bson.M{"$gte": models.PointsPerView}},
			bson.M{"$inc": bson.M{"points": -models.PointsPerView}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&user)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to deduct points"})
			}
			// The guarded update matched nothing: either the user record is
			// gone or the balance cannot cover the view.
			var holder models.User
			ferr := pc.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&holder)
			if ferr == mongo.ErrNoDocuments {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
			}
			if ferr != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch balance"})
			}
			if _, ok := models.ApplyDebit(holder.Points, models.PointsPerView); !ok {
				return c.JSON(http.StatusPaymentRequired, map[string]interface{}{
					"error":    "Insufficient points",
					"required": models.PointsPerView,
					"balance":  holder.Points,
				})
			}
			// Balance was topped up between the two reads; charge on retry.
			return c.JSON(http.StatusConflict, map[string]string{"error": "Balance changed, please retry"})
		}

		view := models.View{
			ID:         uuid.NewString(),
			UserID:     userID,
			PropertyID: id,
			CreatedAt:  time.Now(),
		}
		if _, err := pc.views.InsertOne(ctx, view); err != nil {
			c.Logger().Errorf("failed to record view for user %s: %v", userID, err)
		}
		charged = models.PointsPerView
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"property":      doc.Normalize(),
		"pointsCharged": charged,
	})
}

// MyProperties lists properties owned by the caller.
func (pc *PropertyController) MyProperties(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get("user_id").(string)

	cursor, err := pc.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	for cursor.Next(ctx) {
		var doc models.PropertyDoc
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		listings = append(listings, doc.Normalize())
	}

	return c.JSON(http.StatusOK, listings)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	ctx := c.Request().Context()

	var doc models.PropertyDoc
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if doc.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property name is required"})
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	if _, err := pc.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Property with this id already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	pc.invalidateListings(c)
	return c.JSON(http.StatusCreated, doc.Normalize())
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var update models.PropertyDoc
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{
		"name":        update.Name,
		"city":        update.City,
		"town":        update.Town,
		"rent":        update.Rent,
		"bedroom":     update.Bedroom,
		"type":        update.Type,
		"image1Url":   update.Image1URL,
		"image2Url":   update.Image2URL,
		"image3Url":   update.Image3URL,
		"image4Url":   update.Image4URL,
		"amenities":   update.Amenities,
		"furnished":   update.Furnished,
		"vacancies":   update.Vacancies,
		"lat":         update.Lat,
		"lng":         update.Lng,
		"description": update.Description,
		"names":       update.AgentName,
		"phone":       update.AgentPhone,
		"updatedAt":   time.Now(),
	}

	result, err := pc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	var doc models.PropertyDoc
	if err := pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}

	pc.invalidateListings(c)
	return c.JSON(http.StatusOK, doc.Normalize())
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	result, err := pc.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	pc.invalidateListings(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) invalidateListings(c echo.Context) {
	if err := utils.InvalidateCached(c.Request().Context(), listingsCacheKey); err != nil {
		c.Logger().Warnf("failed to invalidate listings cache: %v", err)
	}
}

func currentBalance(ctx context.Context, users *mongo.Collection, userID string) (int, error) {
	var user models.User
	err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.Points, nil
}
